// Package filesystem provides the types.FS implementations used by scaffer,
// over the OS and over afero, plus the helpers the generator needs on top:
// atomic file writes and text detection.
package filesystem
