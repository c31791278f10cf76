package pypath

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage the user's Python path"
	MsgAddShort        = "Add path to user's Python path"
	MsgDeleteShort     = "Delete path from user's Python path"
	MsgListShort       = "List all paths defined by user"
	MsgListAllShort    = "List all paths in user's Python path"
	MsgPathFileShort   = "Print path to user's path file"
	MsgShellShort      = "Start an interactive pypath session"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Argument help
	MsgAddLong    = "Add PATH to the user path. PATH defaults to the current directory\nand must be an existing directory. It is stored as an absolute path."
	MsgDeleteLong = "Delete an entry from the user path. The argument is either the index\nshown by 'pypath list' or a path. An integer argument is always taken\nas an index. Without argument the current directory is deleted.\nIndexes count from 0; negative indexes are rejected, so -1 does not\nselect the last entry."

	// Version output
	MsgVersionFormat = "pypath version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrOpenStore  = "failed to open path file: %w"
	MsgErrShell      = "interactive session failed: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/pypath/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagFilename = "Path file name inside site-packages (overrides PYPATH_FILENAME)"
	MsgFlagSiteDir  = "Directory holding the path file (default: the interpreter's site-packages)"
	MsgFlagPython   = "Python interpreter used for -l and site-packages discovery"
	MsgFlagAdd      = "Add path (default: current directory) to user path"
	MsgFlagDelete   = "Delete path or index (default: current directory) from user path"
	MsgFlagListAll  = "List all paths (including pre-defined paths)"
	MsgFlagPathFile = "Print path to user's path file"
	MsgFlagNoPrompt = "Do not print a prompt before each line"
	MsgFlagPath     = "Print the config file location instead of its content"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/shell-long.txt
	msgShellLongRaw string
	MsgShellLong    = strings.TrimSpace(msgShellLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
