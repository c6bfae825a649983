// Package types defines the interfaces and data structures shared between
// the generator, the commands and the CLI: the FS abstraction every file
// operation goes through, and the result of a generation run.
package types
