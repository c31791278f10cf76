package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

type renderedConfig struct {
	Filename string         `toml:"filename"`
	SiteDir  string         `toml:"site_dir"`
	Python   renderedPython `toml:"python"`
	Store    renderedStore  `toml:"store"`
	Output   OutputConfig   `toml:"output"`
}

type renderedPython struct {
	Interpreter string `toml:"interpreter"`
	Timeout     string `toml:"timeout"`
}

type renderedStore struct {
	AtomicWrite bool   `toml:"atomic_write"`
	FileMode    string `toml:"file_mode"`
}

// Render returns the configuration as TOML, in the same shape as the
// config file.
func Render(cfg *Config) (string, error) {
	view := renderedConfig{
		Filename: cfg.Filename,
		SiteDir:  cfg.SiteDir,
		Python: renderedPython{
			Interpreter: cfg.Python.Interpreter,
			Timeout:     cfg.Python.Timeout.String(),
		},
		Store: renderedStore{
			AtomicWrite: cfg.Store.AtomicWrite,
			FileMode:    fmt.Sprintf("%04o", cfg.Store.FileMode),
		},
		Output: cfg.Output,
	}
	out, err := toml.Marshal(view)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(out), nil
}
