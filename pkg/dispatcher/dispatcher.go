// Package dispatcher routes pypath requests to the path-list store and the
// runtime search path. It is the single entry point used by both the
// command line and the interactive shell, and it produces the result lines
// those front ends print.
package dispatcher

import (
	"fmt"

	"github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/searchpath"
	"github.com/arthur-debert/pypath/pkg/store"
)

// DefaultHelpCommand is named in the hint shown for an empty list.
const DefaultHelpCommand = "pypath -h"

// PathStore is the subset of store.Store the dispatcher uses.
type PathStore interface {
	Add(path string) (string, error)
	Delete(token string) (string, error)
	ListCustom() ([]store.Entry, error)
	PathFile() string
}

// Options configures a Dispatcher.
type Options struct {
	Store  PathStore
	Lister searchpath.Lister

	// HelpCommand defaults to DefaultHelpCommand.
	HelpCommand string
}

// Dispatcher runs requests.
type Dispatcher struct {
	store       PathStore
	lister      searchpath.Lister
	helpCommand string
}

// Result is the outcome of a request. Lines holds the text output, one
// entry per printed line.
type Result struct {
	Action  Action        `json:"action"`
	Lines   []string      `json:"lines"`
	Path    string        `json:"path,omitempty"`
	Entries []store.Entry `json:"entries,omitempty"`
	Empty   bool          `json:"empty,omitempty"`
}

// New creates a Dispatcher.
func New(opts Options) *Dispatcher {
	help := opts.HelpCommand
	if help == "" {
		help = DefaultHelpCommand
	}
	return &Dispatcher{
		store:       opts.Store,
		lister:      opts.Lister,
		helpCommand: help,
	}
}

// Run validates req and executes it.
func (d *Dispatcher) Run(req Request) (*Result, error) {
	logger := logging.GetLogger("dispatcher")
	logger.Debug().
		Str("action", req.Action.String()).
		Strs("args", req.Args).
		Msg("Dispatching request")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Action {
	case ActionList:
		return d.list()
	case ActionAdd:
		added, err := d.store.Add(req.Arg())
		if err != nil {
			return nil, err
		}
		return &Result{
			Action: ActionAdd,
			Path:   added,
			Lines:  []string{fmt.Sprintf("Added '%s' to path.", added)},
		}, nil
	case ActionDelete:
		removed, err := d.store.Delete(req.Arg())
		if err != nil {
			return nil, err
		}
		return &Result{
			Action: ActionDelete,
			Path:   removed,
			Lines:  []string{fmt.Sprintf("Deleted '%s' from path", removed)},
		}, nil
	case ActionListAll:
		if d.lister == nil {
			return nil, errors.New(errors.ErrRuntime, "no search path runtime configured")
		}
		entries, err := d.lister.Entries()
		if err != nil {
			return nil, err
		}
		return &Result{
			Action:  ActionListAll,
			Lines:   entries,
			Entries: indexed(entries),
		}, nil
	case ActionPathFile:
		return &Result{
			Action: ActionPathFile,
			Path:   d.store.PathFile(),
			Lines:  []string{d.store.PathFile()},
		}, nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unhandled action %d", int(req.Action))
	}
}

func (d *Dispatcher) list() (*Result, error) {
	entries, err := d.store.ListCustom()
	if errors.IsErrorCode(err, errors.ErrNoPathsDefined) {
		return &Result{
			Action: ActionList,
			Empty:  true,
			Lines: []string{
				errors.UserMessage(err),
				fmt.Sprintf("See `%s` for usage information.", d.helpCommand),
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s", e.Index, e.Path)
	}
	return &Result{Action: ActionList, Lines: lines, Entries: entries}, nil
}

func indexed(list []string) []store.Entry {
	entries := make([]store.Entry, len(list))
	for i, p := range list {
		entries[i] = store.Entry{Index: i, Path: p}
	}
	return entries
}
