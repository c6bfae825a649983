// Package version holds build information stamped in by the release build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/scaffer/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/scaffer/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/scaffer/internal/version.Date={{.Date}}
)

// Resolved returns the version, falling back to the module version when
// the binary was installed with `go install` rather than a release build.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String is the multi-line text printed by `scaffer version`.
func String() string {
	return fmt.Sprintf("scaffer version %s\n  commit: %s\n  built:  %s\n", Resolved(), Commit, Date)
}
