package dispatcher

import (
	"strings"

	"github.com/arthur-debert/pypath/pkg/errors"
)

// Action selects the operation a Request performs.
type Action int

const (
	// ActionList prints the user-defined paths, numbered
	ActionList Action = iota
	// ActionAdd appends a directory to the user paths
	ActionAdd
	// ActionDelete removes a user path by value or index
	ActionDelete
	// ActionListAll prints the complete runtime search path
	ActionListAll
	// ActionPathFile prints the location of the path file
	ActionPathFile
)

// Actions lists every action in help order.
var Actions = []Action{ActionAdd, ActionDelete, ActionList, ActionListAll, ActionPathFile}

// String returns the command-line name of the action
func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	case ActionListAll:
		return "list-all"
	case ActionPathFile:
		return "path-file"
	default:
		return "unknown"
	}
}

// Description is the one-line help text for the action.
func (a Action) Description() string {
	switch a {
	case ActionList:
		return "List all paths defined by user."
	case ActionAdd:
		return "Add path to user's Python path."
	case ActionDelete:
		return "Delete path from user's Python path."
	case ActionListAll:
		return "List all paths in user's Python path."
	case ActionPathFile:
		return "Print path to user's path file."
	default:
		return ""
	}
}

// TakesArgument reports whether the action accepts a positional argument.
func (a Action) TakesArgument() bool {
	switch a {
	case ActionAdd, ActionDelete:
		return true
	case ActionList, ActionListAll, ActionPathFile:
		return false
	default:
		return false
	}
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAction maps a command-line name to an Action. "del" is accepted as
// an alias for delete.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "list", "":
		return ActionList, nil
	case "add":
		return ActionAdd, nil
	case "delete", "del":
		return ActionDelete, nil
	case "list-all":
		return ActionListAll, nil
	case "path-file":
		return ActionPathFile, nil
	default:
		return ActionList, errors.Newf(errors.ErrUsage, "unknown action '%s'", name).
			WithDetail("action", name)
	}
}
