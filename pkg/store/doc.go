// Package store persists the user's list of extra Python search path
// directories.
//
// The list lives in a plain text file, one absolute directory per line,
// inside site-packages so the Python site module appends every entry to
// sys.path on start. The whole file is read on every operation and rewritten
// on every change. There is no locking: two concurrent writers race and the
// last one wins.
//
// Arguments naming an entry are resolved in this order:
//
//  1. empty: the current working directory
//  2. an integer: a 0-based index into the current list
//  3. anything else: a path, made absolute against the working directory
//
// Index interpretation wins, so a directory literally named "1" can only be
// deleted by its absolute path or its own index.
package store
