package config

import (
	"bytes"
	encjson "encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/knadh/koanf/parsers/json"
	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors File for go-toml, which does not read koanf tags.
type tomlFile struct {
	Templates    []string          `toml:"scaffer"`
	TemplateURLs map[string]string `toml:"scaffer_template_urls,omitempty"`
	Prefix       string            `toml:"scaffer_prefix,omitempty"`
}

// Encode serializes f in the format path's extension asks for.
func Encode(path string, f File) ([]byte, error) {
	if f.Templates == nil {
		f.Templates = []string{}
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err := toml.Marshal(tomlFile(f))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encoding toml config")
		}
		return data, nil
	}

	m := map[string]interface{}{"scaffer": f.Templates}
	if len(f.TemplateURLs) > 0 {
		m["scaffer_template_urls"] = f.TemplateURLs
	}
	if f.Prefix != "" {
		m["scaffer_prefix"] = f.Prefix
	}
	compact, err := json.Parser().Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "encoding json config")
	}
	var out bytes.Buffer
	if err := encjson.Indent(&out, compact, "", "  "); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "indenting json config")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Write saves f to path, creating parent directories as needed.
func Write(path string, f File) error {
	data, err := Encode(path, f)
	if err != nil {
		return err
	}
	fsys := filesystem.NewOS()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "creating %s", filepath.Dir(path)).WithDetail(errors.DetailPath, path)
	}
	if err := filesystem.WriteFileAtomic(fsys, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "writing %s", path).WithDetail(errors.DetailPath, path)
	}
	return nil
}

// Exists reports whether path is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
