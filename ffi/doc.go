// Package ffi bridges the engine to host-side, non-suspending
// functions: primitive calls that run synchronously to completion and
// never themselves sample, factor, or exit, plus the display helper
// used to surface a value to the operator without otherwise affecting
// inference.
package ffi
