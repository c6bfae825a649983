package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/google/uuid"
)

// WriteFileAtomic writes data to a temporary file next to name and renames
// it into place, so name holds either its old content or all of data. The
// final file gets exactly perm, regardless of the umask.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	tmp := filepath.Join(filepath.Dir(name), "."+filepath.Base(name)+"."+uuid.New().String()+".tmp")

	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Chmod(tmp, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
