// Package testutil provides helpers shared by the attempt tests.
//
// Key components:
//   - CreateFile: write fixture files under a test's temp dir
//   - IsolateEnv: point XDG directories and the taxonomy env var at a temp dir
//   - TraceLogger: a trace-level zerolog logger writing to a buffer
//
// Tests should define their data inline and never depend on the user's
// real configuration.
package testutil
