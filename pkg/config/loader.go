package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config file names, in lookup order within a directory.
const (
	LocalJSON   = "scaffer.json"
	LocalTOML   = "scaffer.toml"
	PackageJSON = "package.json"

	// PackageKey is the package.json key holding the scaffer config.
	PackageKey = "scaffer"

	// EnvTemplates lists extra template directories.
	EnvTemplates = "SCAFFER_TEMPLATES"
	envPrefix    = "SCAFFER_"

	// keyDelim separates nested koanf keys. Template names may contain
	// dots, so the usual "." cannot be used.
	keyDelim = "::"
)

// File is the content of one config file.
type File struct {
	Templates    []string          `koanf:"scaffer"`
	TemplateURLs map[string]string `koanf:"scaffer_template_urls"`
	Prefix       string            `koanf:"scaffer_prefix"`
}

// Source is a config file and what it contained.
type Source struct {
	Path string
	File File
	// Found is false when the file does not exist.
	Found bool
}

// Dir returns the directory relative template roots resolve against.
func (s *Source) Dir() string {
	return filepath.Dir(s.Path)
}

// LoadOptions tells Load where to look. Nothing is read from the process
// environment besides SCAFFER_TEMPLATES.
type LoadOptions struct {
	// WorkDir is where the search for a local config starts.
	WorkDir string
	// GlobalPath is the global config file. Empty means the default
	// location from package paths.
	GlobalPath string
}

// Config is the merged view of the local config, the global config and
// the environment.
type Config struct {
	WorkDir  string
	Local    *Source
	Global   *Source
	EnvRoots []string
}

// Load reads the local and global configs. Missing files are not an error;
// unreadable or malformed ones are.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "getting working directory")
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "resolving working directory")
	}

	globalPath := opts.GlobalPath
	if globalPath == "" {
		globalPath = paths.New("").GlobalConfigPath()
	}

	cfg := &Config{WorkDir: workDir}

	cfg.Global, err = ReadFile(globalPath)
	if err != nil {
		return nil, err
	}

	cfg.Local, err = findLocal(workDir)
	if err != nil {
		return nil, err
	}

	cfg.EnvRoots, err = envRoots()
	if err != nil {
		return nil, err
	}

	ev := logger.Debug().Str("global", globalPath).Bool("globalFound", cfg.Global.Found)
	if cfg.Local != nil {
		ev = ev.Str("local", cfg.Local.Path)
	}
	ev.Int("envRoots", len(cfg.EnvRoots)).Msg("Configuration loaded")
	return cfg, nil
}

// findLocal walks from dir up to the filesystem root and returns the first
// config found, or nil.
func findLocal(dir string) (*Source, error) {
	for {
		for _, name := range []string{LocalJSON, LocalTOML, PackageJSON} {
			path := filepath.Join(dir, name)
			src, err := ReadFile(path)
			if err != nil {
				return nil, err
			}
			if src.Found {
				return src, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ReadFile parses one config file. The format follows the extension:
// .toml files are TOML, anything else is JSON. A package.json counts as
// found only when it has a "scaffer" key.
func ReadFile(path string) (*Source, error) {
	src := &Source{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return src, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading %s", path).WithDetail(errors.DetailPath, path)
	}
	if info.IsDir() {
		return src, nil
	}

	k := koanf.New(keyDelim)
	if err := k.Load(confmap.Provider(defaults(), keyDelim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "loading config defaults")
	}

	fileK := koanf.New(keyDelim)
	var parser koanf.Parser = json.Parser()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parser = toml.Parser()
	}
	if err := fileK.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path).WithDetail(errors.DetailPath, path)
	}

	if filepath.Base(path) == PackageJSON {
		if !fileK.Exists(PackageKey) {
			return src, nil
		}
		fileK = fileK.Cut(PackageKey)
	}
	if err := k.Merge(fileK); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "merging %s", path)
	}

	if err := unmarshal(k, &src.File); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "decoding %s", path).WithDetail(errors.DetailPath, path)
	}
	src.Found = true
	return src, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"scaffer":               []interface{}{},
		"scaffer_template_urls": map[string]interface{}{},
	}
}

func unmarshal(k *koanf.Koanf, out *File) error {
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
}

// envRoots reads SCAFFER_TEMPLATES through koanf's env provider.
func envRoots() ([]string, error) {
	k := koanf.New(keyDelim)
	err := k.Load(env.Provider(envPrefix, keyDelim, func(s string) string {
		if s != EnvTemplates {
			return ""
		}
		return "templates"
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "reading environment")
	}

	var roots []string
	for _, r := range filepath.SplitList(k.String("templates")) {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	return roots, nil
}
