package config

import (
	"time"

	"github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/paths"
)

// Config is the effective pypath configuration.
type Config struct {
	Filename string       `koanf:"filename"`
	SiteDir  string       `koanf:"site_dir"`
	Python   PythonConfig `koanf:"python"`
	Store    StoreConfig  `koanf:"store"`
	Output   OutputConfig `koanf:"output"`

	// Source is the user config file that was merged, if any.
	Source string `koanf:"-"`
}

// PythonConfig selects the interpreter used for list-all and site-packages discovery.
type PythonConfig struct {
	Interpreter string        `koanf:"interpreter"`
	Timeout     time.Duration `koanf:"timeout"`
}

// StoreConfig tunes how the path file is written.
type StoreConfig struct {
	AtomicWrite bool   `koanf:"atomic_write"`
	FileMode    uint32 `koanf:"file_mode"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

var validFormats = map[string]bool{
	"auto": true,
	"term": true,
	"text": true,
	"json": true,
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if err := paths.ValidateFilename(c.Filename); err != nil {
		return err
	}
	if c.Python.Interpreter == "" {
		return errors.New(errors.ErrConfigValid, "python.interpreter must not be empty")
	}
	if c.Python.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "python.timeout must be positive, got %s", c.Python.Timeout)
	}
	if c.Store.FileMode == 0 || c.Store.FileMode > 0777 {
		return errors.Newf(errors.ErrConfigValid, "store.file_mode %o is not a permission mode", c.Store.FileMode)
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "output.format %q is not one of auto, term, text, json", c.Output.Format)
	}
	return nil
}
