// Package paths provides centralized path handling for pypath.
// It implements XDG Base Directory specification compliance for pypath's
// own files and locates the path file inside the Python site-packages
// directory. Path normalization used for path list comparisons lives here
// as well.
package paths
