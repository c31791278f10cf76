package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pypath/pkg/errors"
)

// isolate points the config lookup at an empty directory and clears any
// PYPATH_* variables from the developer's environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PYPATH_CONFIG_DIR", dir)
	for name := range envKeys {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "pypath_magic.pth", cfg.Filename)
	assert.Equal(t, "", cfg.SiteDir)
	assert.Equal(t, "python3", cfg.Python.Interpreter)
	assert.Equal(t, 10*time.Second, cfg.Python.Timeout)
	assert.True(t, cfg.Store.AtomicWrite)
	assert.Equal(t, uint32(0644), cfg.Store.FileMode)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Empty(t, cfg.Source)
}

func TestLoadUserConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
filename = "work.pth"
site_dir = "/opt/site"

[python]
interpreter = "/usr/bin/python3.12"
timeout = "3s"

[output]
format = "JSON"
`), 0644))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "work.pth", cfg.Filename)
	assert.Equal(t, "/opt/site", cfg.SiteDir)
	assert.Equal(t, "/usr/bin/python3.12", cfg.Python.Interpreter)
	assert.Equal(t, 3*time.Second, cfg.Python.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Store.AtomicWrite, "unset keys keep their defaults")
	assert.Equal(t, path, cfg.Source)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	explicit := filepath.Join(dir, "explicit.toml")
	require.NoError(t, os.WriteFile(explicit, []byte(`filename = "from-file.pth"`), 0644))

	t.Setenv("PYPATH_FILENAME", "from-env.pth")
	t.Setenv("PYPATH_SITE_DIR", "/env/site")
	t.Setenv("PYPATH_ATOMIC_WRITE", "false")
	t.Setenv("PYPATH_PYTHON_TIMEOUT", "250ms")
	t.Setenv("PYPATH_UNRELATED", "ignored")

	cfg, err := Load(LoadOptions{ConfigFile: explicit})
	require.NoError(t, err)

	assert.Equal(t, "from-env.pth", cfg.Filename)
	assert.Equal(t, "/env/site", cfg.SiteDir)
	assert.False(t, cfg.Store.AtomicWrite)
	assert.Equal(t, 250*time.Millisecond, cfg.Python.Timeout)
	assert.Equal(t, explicit, cfg.Source)
}

func TestLoadOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("PYPATH_FILENAME", "from-env.pth")
	t.Setenv("PYPATH_SITE_DIR", "/env/site")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
		"filename":      "from-flag.pth",
		"site_dir":      "",
		"output.format": "text",
	}})
	require.NoError(t, err)

	assert.Equal(t, "from-flag.pth", cfg.Filename)
	assert.Equal(t, "/env/site", cfg.SiteDir, "empty overrides are skipped")
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "missing.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("filename = ["), 0644))
		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid format", func(t *testing.T) {
		isolate(t)
		t.Setenv("PYPATH_FORMAT", "xml")
		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("filename with directory", func(t *testing.T) {
		isolate(t)
		t.Setenv("PYPATH_FILENAME", "a/b.pth")
		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Filename: "x.pth",
			Python:   PythonConfig{Interpreter: "python3", Timeout: time.Second},
			Store:    StoreConfig{FileMode: 0644},
			Output:   OutputConfig{Format: "text"},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Python.Interpreter = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Python.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Store.FileMode = 01000
	assert.Error(t, cfg.Validate())
}

func TestRenderRoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	cfg.SiteDir = "/rendered/site"

	out, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "pypath_magic.pth")
	assert.Contains(t, out, "[python]")
	assert.Contains(t, out, "10s")
	assert.Contains(t, out, "0644")

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))

	reloaded, err := Load(LoadOptions{})
	require.NoError(t, err)
	reloaded.Source = ""
	cfg.Source = ""
	assert.Equal(t, cfg, reloaded)
}
