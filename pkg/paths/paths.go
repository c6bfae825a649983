package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvGlobalConfig overrides the location of the global config file
	EnvGlobalConfig = "SCAFFER_GLOBAL_CONFIG"

	// EnvCacheDir overrides the XDG cache directory for scaffer
	EnvCacheDir = "SCAFFER_CACHE_DIR"

	// EnvStateDir overrides the XDG state directory for scaffer
	EnvStateDir = "SCAFFER_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "scaffer"

	// GlobalConfigFile is the name of the global config file in the home
	// directory
	GlobalConfigFile = ".scaffer.json"

	// TemplatesCacheDir is the cache subdirectory holding fetched templates
	TemplatesCacheDir = "templates"

	// LogFileName is the name of the log file
	LogFileName = "scaffer.log"
)

// Paths resolves every location scaffer reads or writes outside of the
// template and destination trees.
type Paths struct {
	home     string
	cacheDir string
	stateDir string
}

// New resolves locations from the environment. An empty home means the
// current user's home directory.
func New(home string) *Paths {
	if home == "" {
		home = homeDir()
	}
	p := &Paths{home: home}

	if dir := os.Getenv(EnvCacheDir); dir != "" {
		p.cacheDir = ExpandHome(dir)
	} else {
		p.cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p
}

// Home returns the home directory the paths were resolved against.
func (p *Paths) Home() string {
	return p.home
}

// GlobalConfigPath returns the global config file: $SCAFFER_GLOBAL_CONFIG,
// or ~/.scaffer.json.
func (p *Paths) GlobalConfigPath() string {
	if path := os.Getenv(EnvGlobalConfig); path != "" {
		return ExpandHome(path)
	}
	return filepath.Join(p.home, GlobalConfigFile)
}

// CacheDir returns scaffer's cache directory.
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// TemplateCacheDir returns where fetched templates are unpacked.
func (p *Paths) TemplateCacheDir() string {
	return filepath.Join(p.cacheDir, TemplatesCacheDir)
}

// StateDir returns scaffer's state directory.
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the log file.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return xdg.Home
}
