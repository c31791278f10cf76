// Package shell runs an interactive pypath session.
//
// A session reads lines such as
//
//	%pypath -a ~/src/project
//	%pypath -d 0
//	%pypath -l
//
// and dispatches them against the path file. Unlike the command line, a
// session keeps a live copy of the interpreter search path: paths added or
// deleted during the session are mirrored into it, so "-l" shows them
// without restarting the interpreter.
package shell
