package fetch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unzip extracts the archive at src into dest. Entries that would land
// outside dest are refused and nothing further is extracted.
func Unzip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, zf := range r.File {
		if err := extract(zf, dest); err != nil {
			return err
		}
	}
	return nil
}

func extract(zf *zip.File, dest string) error {
	name := strings.TrimSuffix(zf.Name, "/")
	if name == "" {
		return nil
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return fmt.Errorf("archive entry %q escapes the destination", zf.Name)
	}
	target := filepath.Join(dest, filepath.FromSlash(name))

	if zf.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if zf.Mode()&os.ModeSymlink != 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	mode := zf.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	in, err := zf.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode|0200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
