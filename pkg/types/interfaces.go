package types

import "io/fs"

// FS is the filesystem the generator reads templates from and writes
// destinations to. The CLI uses the OS; tests use an in-memory tree.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat does not follow symlinks. Implementations without symlink
	// support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
