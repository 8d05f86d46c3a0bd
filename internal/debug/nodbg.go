//go:build !debug

package debug

// Enabled is true when the module is built with the debug tag.
const Enabled = false

// Log is a no-op outside of debug builds.
func Log([]any, string, string, ...any) {}

// Assert is a no-op outside of debug builds.
func Assert(bool, string, ...any) {}
