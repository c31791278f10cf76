package dispatcher

import (
	"github.com/arthur-debert/pypath/pkg/errors"
)

// Request is one invocation: an action and its positional arguments.
type Request struct {
	Action Action
	Args   []string
}

// Validate checks the argument count against the action.
func (r Request) Validate() error {
	switch r.Action {
	case ActionAdd, ActionDelete:
		if len(r.Args) > 1 {
			return errors.Newf(errors.ErrUsage, "'%s' takes at most one argument", r.Action).
				WithDetail("action", r.Action.String()).
				WithDetail("args", len(r.Args))
		}
	case ActionList, ActionListAll, ActionPathFile:
		if len(r.Args) > 0 {
			return errors.Newf(errors.ErrUsage, "No arguments allowed for '%s'.", r.Action).
				WithDetail("action", r.Action.String()).
				WithDetail("args", len(r.Args))
		}
	default:
		return errors.Newf(errors.ErrUsage, "unknown action %d", int(r.Action))
	}
	return nil
}

// Arg returns the positional argument, or "" when none was given.
func (r Request) Arg() string {
	if len(r.Args) == 0 {
		return ""
	}
	return r.Args[0]
}

// FromFlags builds a request from the single-letter flag form: -a, -d, -l
// and -p. No flag selects the list action. Setting more than one flag is a
// usage error.
func FromFlags(add, del, listAll, pathFile bool, args []string) (Request, error) {
	selected := make([]Action, 0, 1)
	if add {
		selected = append(selected, ActionAdd)
	}
	if del {
		selected = append(selected, ActionDelete)
	}
	if listAll {
		selected = append(selected, ActionListAll)
	}
	if pathFile {
		selected = append(selected, ActionPathFile)
	}

	if len(selected) > 1 {
		return Request{}, errors.New(errors.ErrUsage, "Only a single option allowed.").
			WithDetail("options", len(selected))
	}

	req := Request{Action: ActionList, Args: args}
	if len(selected) == 1 {
		req.Action = selected[0]
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
