package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pypath/pkg/errors"
)

// Environment variable names
const (
	// EnvFilename overrides the base name of the path file
	EnvFilename = "PYPATH_FILENAME"

	// EnvSiteDir overrides the directory holding the path file
	EnvSiteDir = "PYPATH_SITE_DIR"

	// EnvConfigDir overrides the XDG config directory for pypath
	EnvConfigDir = "PYPATH_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultFilename is the conventional path file name
	DefaultFilename = "pypath_magic.pth"

	// PathFileExt is the extension the Python site module processes
	PathFileExt = ".pth"

	// AppDirName is the directory name for pypath-specific files
	AppDirName = "pypath"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "pypath.log"
)

// SitePackagesFinder discovers the site-packages directory of a runtime.
type SitePackagesFinder interface {
	SitePackages() (string, error)
}

// Paths provides centralized path management for pypath
type Paths interface {
	SiteDir() string
	PathFile() string
	ConfigDir() string
	ConfigFilePath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	siteDir   string
	filename  string
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance for the path file filename inside siteDir.
// An empty filename selects DefaultFilename.
func New(siteDir, filename string) (Paths, error) {
	if siteDir == "" {
		return nil, errors.New(errors.ErrConfigValid, "site directory is not set")
	}
	if filename == "" {
		filename = DefaultFilename
	}
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	absSite, err := filepath.Abs(expandHome(siteDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", siteDir)
	}

	p := &paths{
		siteDir:  absSite,
		filename: filename,
	}
	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// XDG_STATE_HOME is checked directly so the log file follows it in tests
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// ValidateFilename checks that name is a bare file name.
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrConfigValid, "path file name is empty")
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) || name == "." || name == ".." {
		return errors.Newf(errors.ErrConfigValid, "path file name %q must not contain a directory", name).
			WithDetail("filename", name)
	}
	return nil
}

// ResolveSiteDir returns configured when set, otherwise asks finder.
func ResolveSiteDir(configured string, finder SitePackagesFinder) (string, error) {
	if configured != "" {
		return expandHome(configured), nil
	}
	if finder == nil {
		return "", errors.New(errors.ErrConfigValid, "no site directory configured and no interpreter to ask")
	}
	dir, err := finder.SitePackages()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRuntime, "failed to locate site-packages")
	}
	return dir, nil
}

// SiteDir returns the directory holding the path file
func (p *paths) SiteDir() string {
	return p.siteDir
}

// PathFile returns the absolute location of the path file
func (p *paths) PathFile() string {
	return filepath.Join(p.siteDir, p.filename)
}

// ConfigDir returns the XDG config directory for pypath
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the user configuration file location
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the XDG state directory for pypath
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the log file location
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// DefaultConfigFilePath returns the user configuration file location
// without requiring a site directory.
func DefaultConfigFilePath() string {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		return filepath.Join(expandHome(configDir), ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
