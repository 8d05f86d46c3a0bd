package debug

import (
	"testing"

	"github.com/timandy/routine"
)

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting routes debug.Log output through t.Log for the duration of a
// test, instead of stderr. Returns a function that restores the previous
// state; callers typically `defer debug.WithTesting(t)()`.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)

	return func() {
		tls.Set(prev)
	}
}
