package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pypath/pkg/filesystem"
	"github.com/arthur-debert/pypath/pkg/paths"
	"github.com/arthur-debert/pypath/pkg/searchpath"
	"github.com/arthur-debert/pypath/pkg/store"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// BaseSearchPath is the runtime search path environments start with.
var BaseSearchPath = []string{
	"/usr/lib/python312.zip",
	"/usr/lib/python3.12",
	"/usr/lib/python3.12/lib-dynload",
}

// TestEnvironment provides a site directory, a working directory and a
// filesystem for store tests.
type TestEnvironment struct {
	Root     string
	SiteDir  string
	HomeDir  string
	Cwd      string
	PathFile string

	FS   filesystem.FS
	Live *searchpath.Live
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = NewTestFS()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.SiteDir = filepath.Join(env.Root, "lib", "python3.12", "site-packages")
	env.HomeDir = filepath.Join(env.Root, "home", "u")
	env.Cwd = filepath.Join(env.HomeDir, "proj")
	env.PathFile = filepath.Join(env.SiteDir, paths.DefaultFilename)
	env.Mkdir(env.SiteDir, env.Cwd)

	live := append([]string{}, BaseSearchPath...)
	env.Live = searchpath.NewLive(append(live, env.SiteDir))

	return env
}

// Getwd returns the environment's working directory.
func (env *TestEnvironment) Getwd() (string, error) {
	return env.Cwd, nil
}

// Cd changes the environment's working directory.
func (env *TestEnvironment) Cd(dir string) {
	env.Cwd = dir
}

// Mkdir creates directories; relative ones are created under Root.
func (env *TestEnvironment) Mkdir(dirs ...string) {
	env.t.Helper()
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(env.Root, dir)
		}
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			env.t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}

// Path returns rel joined under Root.
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, rel)
}

// NewStore builds a store over the environment. The live search path is
// wired as the sink.
func (env *TestEnvironment) NewStore() *store.Store {
	env.t.Helper()
	s, err := store.New(store.Options{
		FS:          env.FS,
		PathFile:    env.PathFile,
		Getwd:       env.Getwd,
		Sink:        env.Live,
		AtomicWrite: true,
	})
	if err != nil {
		env.t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

// WritePathFile replaces the path file content with lines.
func (env *TestEnvironment) WritePathFile(lines ...string) {
	env.t.Helper()
	if err := env.FS.WriteFile(env.PathFile, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		env.t.Fatalf("Failed to write path file: %v", err)
	}
}

// ReadPathFile returns the raw path file content.
func (env *TestEnvironment) ReadPathFile() string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.PathFile)
	if err != nil {
		env.t.Fatalf("Failed to read path file: %v", err)
	}
	return string(data)
}
