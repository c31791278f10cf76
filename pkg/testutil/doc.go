// Package testutil provides utilities for testing pypath components.
//
// Key components:
//   - TestEnvironment: site directory, working directory and filesystem
//     wiring for store-level tests, with cleanup
//   - NewTestFS: in-memory afero filesystem
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when the code under test touches the real filesystem
//     (interpreter queries, cobra commands)
//   - Each test should be completely isolated with no shared state
package testutil
