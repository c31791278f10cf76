// Package filesystem provides filesystem implementations for pypath.
//
// This package contains the FS interface used by the path-list store,
// the standard OS filesystem and an afero-backed filesystem used in tests.
package filesystem
