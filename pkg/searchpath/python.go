package searchpath

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/logging"
)

const (
	// DefaultInterpreter is used when no interpreter is configured.
	DefaultInterpreter = "python3"

	// DefaultTimeout bounds a single interpreter query.
	DefaultTimeout = 10 * time.Second

	sysPathScript      = "import sys\nfor p in sys.path:\n    print(p)"
	sitePackagesScript = "import sysconfig\nprint(sysconfig.get_paths()['purelib'])"
)

// CommandRunner runs a program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, errors.Wrap(err, errors.ErrRuntime, strings.TrimSpace(stderr.String()))
	}
	return out, err
}

// Python queries a Python interpreter for its search path and
// site-packages directory.
type Python struct {
	Interpreter string
	Timeout     time.Duration
	Run         CommandRunner
}

// NewPython returns a Python runtime for interpreter, falling back to
// DefaultInterpreter and DefaultTimeout for zero values.
func NewPython(interpreter string, timeout time.Duration) *Python {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Python{
		Interpreter: interpreter,
		Timeout:     timeout,
		Run:         ExecRunner,
	}
}

// Entries returns sys.path of the interpreter. The empty entry Python adds
// for the script directory is dropped.
func (p *Python) Entries() ([]string, error) {
	out, err := p.query(sysPathScript)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// SitePackages returns the interpreter's pure-Python site-packages directory.
func (p *Python) SitePackages() (string, error) {
	out, err := p.query(sitePackagesScript)
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(out)
	if dir == "" {
		return "", errors.Newf(errors.ErrRuntime, "%s reported no site-packages directory", p.Interpreter)
	}
	return dir, nil
}

func (p *Python) query(script string) (string, error) {
	logger := logging.GetLogger("searchpath.python")

	run := p.Run
	if run == nil {
		run = ExecRunner
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Trace().Str("interpreter", p.Interpreter).Msg("Querying interpreter")
	out, err := run(ctx, p.Interpreter, "-c", script)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRuntime, "failed to query %s", p.Interpreter).
			WithDetail("interpreter", p.Interpreter)
	}
	return string(out), nil
}
