package pypath

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pypath/pkg/config"
	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/filesystem"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/paths"
	"github.com/arthur-debert/pypath/pkg/searchpath"
	"github.com/arthur-debert/pypath/pkg/store"
	"github.com/arthur-debert/pypath/pkg/style"
)

// pyRuntime is what pypath needs from a Python interpreter.
type pyRuntime interface {
	searchpath.Lister
	paths.SitePackagesFinder
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
	filename   string
	siteDir    string
	python     string

	// newRuntime is replaced in tests
	newRuntime func(cfg *config.Config) pyRuntime
}

func defaultRuntime(cfg *config.Config) pyRuntime {
	return searchpath.NewPython(cfg.Python.Interpreter, cfg.Python.Timeout)
}

// app is the per-invocation wiring of config, paths and runtime.
type app struct {
	cfg      *config.Config
	paths    paths.Paths
	runtime  pyRuntime
	renderer *style.Renderer
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides: map[string]interface{}{
			"filename":           o.filename,
			"site_dir":           o.siteDir,
			"python.interpreter": o.python,
			"output.format":      o.format,
		},
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func (o *globalOptions) newApp() (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	newRuntime := o.newRuntime
	if newRuntime == nil {
		newRuntime = defaultRuntime
	}
	rt := newRuntime(cfg)

	siteDir, err := paths.ResolveSiteDir(cfg.SiteDir, rt)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	p, err := paths.New(siteDir, cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	format, err := style.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("path_file", p.PathFile()).
		Str("config", cfg.Source).
		Str("format", format.String()).
		Msg("Initialized")

	return &app{
		cfg:      cfg,
		paths:    p,
		runtime:  rt,
		renderer: style.NewRenderer(format),
	}, nil
}

func (a *app) storeOptions() store.Options {
	return store.Options{
		FS:          filesystem.NewOS(),
		PathFile:    a.paths.PathFile(),
		AtomicWrite: a.cfg.Store.AtomicWrite,
		FileMode:    fs.FileMode(a.cfg.Store.FileMode),
	}
}

func (a *app) dispatcher() (*dispatcher.Dispatcher, error) {
	st, err := store.New(a.storeOptions())
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpenStore, err)
	}
	return dispatcher.New(dispatcher.Options{
		Store:  st,
		Lister: a.runtime,
	}), nil
}

// runRequest executes req and prints the result on the command's output.
func (o *globalOptions) runRequest(cmd *cobra.Command, req dispatcher.Request) error {
	logging.LogCommand(req.Action.String(), req.Args)

	a, err := o.newApp()
	if err != nil {
		return err
	}
	d, err := a.dispatcher()
	if err != nil {
		return err
	}
	result, err := d.Run(req)
	if err != nil {
		return err
	}
	return a.renderer.PrintResult(cmd.OutOrStdout(), result)
}

// PrintError renders err on w in the format selected by the --format flag
// of root. Unknown formats fall back to auto detection.
func PrintError(root *cobra.Command, w io.Writer, err error) {
	name, _ := root.PersistentFlags().GetString("format")
	format, perr := style.ParseFormat(name)
	if perr != nil {
		format = style.FormatAuto
	}
	_ = style.NewRenderer(format).PrintError(w, err)
}
