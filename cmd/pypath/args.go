package pypath

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs the root command with args.
func Execute(root *cobra.Command, args []string) error {
	root.SetArgs(flagFormArgs(root, args))
	return root.Execute()
}

// flagFormArgs keeps the target of -a/-d from being taken as a subcommand
// name: `pypath -a list` adds the directory "list". When an add or delete
// flag comes before the first positional argument, the flags are moved to
// the front and the positionals placed after "--", where cobra stops looking
// for subcommands. Anything it cannot classify is returned unchanged so cobra
// reports the error.
func flagFormArgs(root *cobra.Command, args []string) []string {
	var flags, positionals []string
	action := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			if !action && len(positionals) == 0 {
				return args
			}
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
		names, needsValue, ok := parseFlagToken(root, arg)
		if !ok {
			return args
		}
		for _, name := range names {
			if name == "add" || name == "delete" {
				action = true
			}
		}
		if needsValue {
			if i+1 >= len(args) {
				return args
			}
			i++
			flags = append(flags, args[i])
		}
	}

	if !action || len(positionals) == 0 {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

// parseFlagToken returns the long names of the flags in arg and whether the
// next argument is consumed as the value of the last one.
func parseFlagToken(root *cobra.Command, arg string) ([]string, bool, bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, hasValue := strings.Cut(arg[2:], "=")
		flag := lookupFlag(root, name)
		if flag == nil {
			return nil, false, false
		}
		return []string{flag.Name}, !hasValue && flag.NoOptDefVal == "", true
	}

	var names []string
	shorthands := arg[1:]
	for j := 0; j < len(shorthands); j++ {
		flag := lookupShorthand(root, shorthands[j:j+1])
		if flag == nil {
			return nil, false, false
		}
		names = append(names, flag.Name)
		if flag.NoOptDefVal == "" {
			// -fVALUE or -f VALUE
			return names, j == len(shorthands)-1, true
		}
	}
	return names, false, true
}

func lookupFlag(root *cobra.Command, name string) *pflag.Flag {
	if flag := root.Flags().Lookup(name); flag != nil {
		return flag
	}
	return root.PersistentFlags().Lookup(name)
}

func lookupShorthand(root *cobra.Command, name string) *pflag.Flag {
	if flag := root.Flags().ShorthandLookup(name); flag != nil {
		return flag
	}
	return root.PersistentFlags().ShorthandLookup(name)
}
