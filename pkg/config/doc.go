// Package config handles configuration management for pypath.
// Settings are layered from embedded defaults, the user's TOML config file
// and PYPATH_* environment variables, in that order.
package config
