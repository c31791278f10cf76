// Package searchpath models the Python module search path as seen from
// pypath.
//
// Two collaborator interfaces are defined here. A Lister reports the full
// search path of a runtime (sys.path). A Sink receives paths as they are
// added to or deleted from the persisted list, so an interactive session can
// keep its in-memory search path in step without restarting.
//
// Python queries a real interpreter. Live is an in-memory search path that
// is both a Lister and a Sink and backs the interactive shell.
package searchpath
