package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/searchpath"
	"github.com/arthur-debert/pypath/pkg/store"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "pypath> "

// Usage is printed for "help" and "%pypath -h".
const Usage = `%pypath              - List all paths defined by user.
%pypath -a [PATH]    - Add PATH (default: current directory) to user path.
%pypath -d [PATH|N]  - Delete PATH or entry N from user path.
%pypath -l           - List all paths (including pre-defined paths).
%pypath -p           - Print path to user's path file.
exit, quit           - End the session.

The added paths persist through sessions and are stored separately
from paths added by setuptools/pip (see %pypath -p).`

// Printer writes results and errors.
type Printer interface {
	PrintResult(w io.Writer, result *dispatcher.Result) error
	PrintError(w io.Writer, err error) error
}

// Options configures a Session.
type Options struct {
	// Store configures the path file. Its Sink is replaced by the
	// session's live search path.
	Store store.Options

	// Runtime seeds the live search path.
	Runtime searchpath.Lister

	// Printer defaults to plain text.
	Printer Printer

	// Prompt defaults to DefaultPrompt. Set NoPrompt to disable it.
	Prompt   string
	NoPrompt bool
}

// Session is an interactive pypath loop bound to one path file.
type Session struct {
	dispatcher *dispatcher.Dispatcher
	live       *searchpath.Live
	printer    Printer
	prompt     string
}

// NewSession seeds the live search path from the runtime and opens the
// path file.
func NewSession(opts Options) (*Session, error) {
	if opts.Runtime == nil {
		return nil, errors.New(errors.ErrInvalidInput, "session requires a search path runtime")
	}
	live, err := searchpath.NewLiveFrom(opts.Runtime)
	if err != nil {
		return nil, err
	}

	storeOpts := opts.Store
	storeOpts.Sink = live
	st, err := store.New(storeOpts)
	if err != nil {
		return nil, err
	}

	printer := opts.Printer
	if printer == nil {
		printer = PlainPrinter{}
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if opts.NoPrompt {
		prompt = ""
	}

	return &Session{
		dispatcher: dispatcher.New(dispatcher.Options{
			Store:       st,
			Lister:      live,
			HelpCommand: "help",
		}),
		live:    live,
		printer: printer,
		prompt:  prompt,
	}, nil
}

// Live returns the session's search path.
func (s *Session) Live() *searchpath.Live {
	return s.live
}

// Execute runs a single request line. Blank lines, help and exit lines
// return a nil result.
func (s *Session) Execute(line string) (*dispatcher.Result, error) {
	parsed, err := parseLine(line)
	if err != nil {
		return nil, err
	}
	if parsed.kind != lineRequest {
		return nil, nil
	}
	return s.dispatcher.Run(parsed.req)
}

// Run reads lines from in until exit, end of input or cancellation.
// Errors on a line are printed to errOut and the loop continues.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	logger := logging.GetLogger("shell")
	live, _ := s.live.Entries()
	logger.Debug().Int("live_entries", len(live)).Msg("Session started")

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			if _, err := fmt.Fprint(out, s.prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, errors.ErrRuntime, "failed to read session input")
			}
			logger.Debug().Msg("Session input closed")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		logger.Trace().Str("line", line).Msg("Read line")

		parsed, err := parseLine(line)
		if err != nil {
			if perr := s.printer.PrintError(errOut, err); perr != nil {
				return perr
			}
			continue
		}

		switch parsed.kind {
		case lineEmpty:
			continue
		case lineExit:
			logger.Debug().Msg("Session ended")
			return nil
		case lineHelp:
			if _, err := io.WriteString(out, Usage+"\n"); err != nil {
				return err
			}
			continue
		case lineRequest:
		}

		result, err := s.dispatcher.Run(parsed.req)
		if err != nil {
			if perr := s.printer.PrintError(errOut, err); perr != nil {
				return perr
			}
			continue
		}
		if err := s.printer.PrintResult(out, result); err != nil {
			return err
		}
	}
}

// PlainPrinter prints result lines as-is and errors in the form the
// interactive interpreter reports usage errors.
type PlainPrinter struct{}

// PrintResult writes one result line per output line.
func (PlainPrinter) PrintResult(w io.Writer, result *dispatcher.Result) error {
	for _, line := range result.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintError writes "UsageError: <message>".
func (PlainPrinter) PrintError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "UsageError: %s\n", errors.UserMessage(err))
	return werr
}
