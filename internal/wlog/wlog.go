// Package wlog is the env-gated debug logger used by poly's
// multiplication kernels, nttcheck, and the cmd/ drivers: silent unless
// an environment variable turns it on, so production call sites can
// leave tracing calls in place at zero cost.
package wlog

import (
	"fmt"
	"io"
	"os"
)

var enabled = os.Getenv("ZPOLY_DEBUG") == "1"

// Enabled reports whether debug logging is turned on.
func Enabled() bool { return enabled }

// Printf writes a formatted debug line to stderr when logging is
// enabled, and does nothing otherwise.
func Printf(format string, args ...any) {
	if enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Fprintf writes a formatted debug line to w when logging is enabled.
func Fprintf(w io.Writer, format string, args ...any) {
	if enabled {
		fmt.Fprintf(w, format, args...)
	}
}
