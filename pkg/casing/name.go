package casing

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Name is a variable identifier independent of casing: an ordered list of
// lowercase words. "my project", ScfMyProject and SCF_MY_PROJECT all share
// the Name {"my", "project"}.
type Name []string

// String joins the words with spaces.
func (n Name) String() string {
	return strings.Join(n, " ")
}

// Kebab joins the words with dashes. It is the form used in messages and in
// -v assignments.
func (n Name) Kebab() string {
	return strings.Join(n, "-")
}

// Flatten joins the words without a separator, which is how flat patterns
// write a name.
func (n Name) Flatten() string {
	return strings.Join(n, "")
}

// Equal reports whether both names have the same words.
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the first words of n are exactly the words of
// other. Every name has itself as prefix.
func (n Name) HasPrefix(other Name) bool {
	if len(other) == 0 || len(other) > len(n) {
		return false
	}
	return n[:len(other)].Equal(other)
}

// Valid reports whether n can be written in every pattern and parsed back:
// it has at least one word, every word is a lowercase letter followed by
// lowercase letters or digits, and no word is the prefix itself.
func (n Name) Valid(prefix Prefix) bool {
	if len(n) == 0 {
		return false
	}
	for _, w := range n {
		if !isWord(w, false) || w == prefix.lower {
			return false
		}
	}
	return true
}

// ParseName splits free-form text into words. Spaces, dashes, underscores,
// dots and case changes all separate words, everything is lowercased, and a
// word made only of digits is glued to the word before it, so "app2",
// "App 2" and "APP_2" all give {"app2"}.
//
// Values supplied by users go through ParseName before being rendered, as do
// the keys of -v assignments.
func ParseName(text string) Name {
	fields := strings.Fields(strcase.ToDelimited(text, ' '))
	words := make(Name, 0, len(fields))
	for _, f := range fields {
		if len(words) > 0 && isDigits(f) {
			words[len(words)-1] += f
			continue
		}
		words = append(words, f)
	}
	return words
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
