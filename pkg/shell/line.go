package shell

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/errors"
)

// Command is the name a session line must start with, with or without the
// leading "%".
const Command = "pypath"

type lineKind int

const (
	lineEmpty lineKind = iota
	lineExit
	lineHelp
	lineRequest
)

type parsedLine struct {
	kind lineKind
	req  dispatcher.Request
}

func parseLine(line string) (parsedLine, error) {
	fields, err := splitFields(line)
	if err != nil {
		return parsedLine{}, err
	}
	if len(fields) == 0 {
		return parsedLine{kind: lineEmpty}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return parsedLine{kind: lineExit}, nil
	case "help", "?":
		return parsedLine{kind: lineHelp}, nil
	case Command, "%" + Command:
	case Command + "?", "%" + Command + "?":
		return parsedLine{kind: lineHelp}, nil
	default:
		return parsedLine{}, errors.Newf(errors.ErrUsage, "unknown command '%s'. Type 'help' for usage.", fields[0]).
			WithDetail("command", fields[0])
	}

	flags := pflag.NewFlagSet(Command, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	add := flags.BoolP("add", "a", false, dispatcher.ActionAdd.Description())
	del := flags.BoolP("delete", "d", false, dispatcher.ActionDelete.Description())
	listAll := flags.BoolP("list-all", "l", false, dispatcher.ActionListAll.Description())
	pathFile := flags.BoolP("path-file", "p", false, dispatcher.ActionPathFile.Description())
	help := flags.BoolP("help", "h", false, "Show usage")

	if err := flags.Parse(fields[1:]); err != nil {
		return parsedLine{}, errors.Wrap(err, errors.ErrUsage, "%pypath: invalid option")
	}
	if *help {
		return parsedLine{kind: lineHelp}, nil
	}

	req, err := dispatcher.FromFlags(*add, *del, *listAll, *pathFile, flags.Args())
	if err != nil {
		return parsedLine{}, err
	}
	return parsedLine{kind: lineRequest, req: req}, nil
}

// splitFields splits a line on whitespace. Single and double quotes group
// words so paths with spaces can be given.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		quote   rune
		inField bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if quote != 0 {
		return nil, errors.New(errors.ErrUsage, "unterminated quote")
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields, nil
}
