// Package testutil provides utilities for testing scaffer commands.
//
// TestEnvironment lays out a project directory, a home directory with the
// global config, and cache and state directories under t.TempDir(), and
// points the SCAFFER_* environment variables at them. Templates and config
// files are written with helpers so each test declares its own fixtures
// inline.
//
// Usage guidelines:
//   - Command tests use TestEnvironment; unit tests of the core packages
//     use in-memory filesystems or plain strings instead
//   - All test data should be defined inline, not in external files
//   - Tests using TestEnvironment set environment variables and must not
//     call t.Parallel()
package testutil
