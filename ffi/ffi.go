package ffi

import (
	"fmt"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/obslog"
)

// CallPrimitive invokes f(args...) synchronously and resumes k with the
// result — k(f(args...)). f must not itself suspend on sample/factor/
// exit: the bridge exists precisely because host math and
// data-manipulation routines are not compiled into the
// continuation-passing form the rest of the engine runs in.
func CallPrimitive(k core.Cont, f func(args ...any) any, args ...any) core.Step {
	return k(f(args...))
}

// Display formats value via fmt.Sprint, writes it to the shared logger
// at info level, and resumes k(value). It has no effect on inference:
// it neither samples nor factors.
func Display(k core.Cont, value any) core.Step {
	obslog.Info("display", map[string]any{"value": fmt.Sprint(value)})
	return k(value)
}
