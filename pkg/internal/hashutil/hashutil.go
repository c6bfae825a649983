// Package hashutil derives stable names from content.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyLength is the number of hex characters Key returns.
const KeyLength = 16

// Key returns a short, filesystem-safe key for s: the first KeyLength hex
// digits of its SHA-256.
func Key(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:KeyLength]
}
