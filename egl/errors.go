// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
)

var (
	// ErrInit reports a failure to initialize a display or to create a
	// surface.
	ErrInit = errors.New("egl: initialization failed")
	// ErrMode reports that no config matches the requested attributes.
	ErrMode = errors.New("egl: no matching config")
)

// Error is a failed EGL call together with the error code reported by
// eglGetError.
type Error struct {
	// Op is the name of the failed EGL function.
	Op   string
	Code int32
	// Kind is ErrInit or ErrMode.
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("egl: %s failed: 0x%x (%s)", e.Op, e.Code, ErrorString(e.Code))
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var errorNames = map[int32]string{
	0x3000: "EGL_SUCCESS",
	0x3001: "EGL_NOT_INITIALIZED",
	0x3002: "EGL_BAD_ACCESS",
	0x3003: "EGL_BAD_ALLOC",
	0x3004: "EGL_BAD_ATTRIBUTE",
	0x3005: "EGL_BAD_CONFIG",
	0x3006: "EGL_BAD_CONTEXT",
	0x3007: "EGL_BAD_CURRENT_SURFACE",
	0x3008: "EGL_BAD_DISPLAY",
	0x3009: "EGL_BAD_MATCH",
	0x300a: "EGL_BAD_NATIVE_PIXMAP",
	0x300b: "EGL_BAD_NATIVE_WINDOW",
	0x300c: "EGL_BAD_PARAMETER",
	0x300d: "EGL_BAD_SURFACE",
	0x300e: "EGL_CONTEXT_LOST",
}

// ErrorString returns the symbolic name of an eglGetError code.
func ErrorString(code int32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "unknown error"
}

func newError(n Native, op string, kind error) error {
	return &Error{Op: op, Code: n.GetError(), Kind: kind}
}
