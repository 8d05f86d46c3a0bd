//go:build debug

// Package debug includes debugging helpers used by the trie engines.
//
// It is a no-op unless the module is built with `-tags debug`, in which
// case each engine's facade Insert and Delete calls are traced to stderr
// (or to the active *testing.T via WithTesting) and internal invariants
// are checked with Assert.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"

	"github.com/bastiscode/byte-trie/internal/xflag"
)

// Enabled is true when the module is built with the debug tag.
const Enabled = true

var (
	debugPattern = xflag.Func("filter", "regexp to filter debug logs by", regexp.Compile)
	nocapture    = flag.Bool("nocapture", false, "disables capturing debug logs as test logs")
)

// Log prints debugging information about a trie mutation to stderr, or to
// the active *testing.T registered with WithTesting.
//
// context is optional args for fmt.Printf that are printed before operation,
// useful for identifying a related group of operations.
func Log(context []any, operation string, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)

	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/bastiscode/byte-trie/")
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)

	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *debugPattern != nil && !(*debugPattern).MatchString(buf.String()) {
		return
	}

	t := tls.Get()
	if !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. Only enabled in debug builds, so this
// should only guard invariants the public API already prevents from being
// violated in a normal build.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("byte-trie: internal assertion failed: "+format, args...))
	}
}
