// Package shell implements the command dispatch engine: tokenization,
// the builtin registry, path resolution, session state, and delegation of
// unknown commands to external programs.
package shell

import "fmt"

// Result is the uniform outcome of every command, builtin or delegated.
// Output is always human-readable text; OK=false marks a reported,
// non-fatal failure. Callers only ever print Output and check OK, which is
// what lets the web gateway reuse the same handlers unchanged.
type Result struct {
	OK     bool   `json:"ok"`
	Output string `json:"output"`
}

func Ok(format string, args ...any) Result {
	return Result{OK: true, Output: fmt.Sprintf(format, args...)}
}

func Fail(format string, args ...any) Result {
	return Result{OK: false, Output: fmt.Sprintf(format, args...)}
}
