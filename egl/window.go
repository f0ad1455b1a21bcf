// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"log/slog"

	"eglwin.dev/eglwin/internal/leak"
)

// WindowInfo holds an EGL display, a native window and the surface
// created for it.
//
// A WindowInfo is not safe for concurrent use. Release must be called
// on the thread the surface is current on, if any.
type WindowInfo struct {
	n        Native
	log      *slog.Logger
	handle   NativeWindow
	display  Display
	surface  Surface
	major    int
	minor    int
	released bool
}

// pbufferConfigAttribs are copied from a window config to select the
// matching pbuffer config.
var pbufferConfigAttribs = []int32{
	RENDERABLE_TYPE,
	RED_SIZE,
	GREEN_SIZE,
	BLUE_SIZE,
	ALPHA_SIZE,
	DEPTH_SIZE,
	STENCIL_SIZE,
	SAMPLE_BUFFERS,
	SAMPLES,
}

// NewWindowInfo initializes EGL for the window win. Without WithDisplay
// the default display is used.
//
// The returned WindowInfo must be released with Release.
func NewWindowInfo(n Native, win NativeWindow, opts ...Option) (*WindowInfo, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	w := &WindowInfo{
		n:       n,
		log:     o.logger,
		handle:  win,
		display: o.display,
		surface: o.surface,
	}
	if w.display == NoDisplay {
		w.display = n.GetDisplay(DefaultDisplay)
		if w.display == NoDisplay {
			return nil, newError(n, "eglGetDisplay", ErrInit)
		}
	}
	major, minor, ok := n.Initialize(w.display)
	if !ok {
		return nil, newError(n, "eglInitialize", ErrInit)
	}
	w.major, w.minor = int(major), int(minor)
	leak.Track(w, (*WindowInfo).reportLeak)
	return w, nil
}

// Handle returns the native window.
func (w *WindowInfo) Handle() NativeWindow {
	return w.handle
}

// SetHandle replaces the native window used by CreateWindowSurface.
func (w *WindowInfo) SetHandle(win NativeWindow) {
	w.handle = win
}

// Display returns the EGL display, or NoDisplay after TerminateDisplay.
func (w *WindowInfo) Display() Display {
	return w.display
}

// Surface returns the current surface, if any.
func (w *WindowInfo) Surface() Surface {
	return w.surface
}

// Version returns the EGL version reported by eglInitialize.
func (w *WindowInfo) Version() (major, minor int) {
	return w.major, w.minor
}

// CreateWindowSurface creates an on-screen surface for the native window
// with the config cfg. Any existing surface is destroyed first.
func (w *WindowInfo) CreateWindowSurface(cfg Config) error {
	w.DestroySurface()
	w.surface = w.n.CreateWindowSurface(w.display, cfg, w.handle, nil)
	if w.surface == NoSurface {
		return newError(w.n, "eglCreateWindowSurface", ErrInit)
	}
	return nil
}

// CreatePbufferSurface creates a 1x1 off-screen surface. Its config is
// chosen to match the color, depth, stencil, multisample and renderable
// attributes of cfg, which itself need not support pbuffers. Any existing
// surface is destroyed first.
func (w *WindowInfo) CreatePbufferSurface(cfg Config) error {
	w.DestroySurface()
	attribs := make([]int32, 0, 2*len(pbufferConfigAttribs)+3)
	attribs = append(attribs, SURFACE_TYPE, PBUFFER_BIT)
	for _, a := range pbufferConfigAttribs {
		v, ok := w.n.GetConfigAttrib(w.display, cfg, a)
		if !ok {
			w.logger().Debug("egl: eglGetConfigAttrib failed",
				"attrib", fmt.Sprintf("0x%x", a),
				"error", ErrorString(w.n.GetError()))
		}
		attribs = append(attribs, a, v)
	}
	attribs = append(attribs, NONE)

	var configs [1]Config
	if n, ok := w.n.ChooseConfig(w.display, attribs, configs[:]); !ok || n == 0 {
		return newError(w.n, "eglChooseConfig", ErrMode)
	}
	surfAttribs := []int32{
		WIDTH, 1,
		HEIGHT, 1,
		TEXTURE_TARGET, NO_TEXTURE,
		TEXTURE_FORMAT, NO_TEXTURE,
		NONE,
	}
	w.surface = w.n.CreatePbufferSurface(w.display, configs[0], surfAttribs)
	if w.surface == NoSurface {
		return newError(w.n, "eglCreatePbufferSurface", ErrInit)
	}
	return nil
}

// DestroySurface destroys the surface, first releasing it from the
// calling thread if it is the current draw surface. Failures are logged.
func (w *WindowInfo) DestroySurface() {
	if w.surface == NoSurface {
		return
	}
	if w.n.GetCurrentSurface(DRAW) == w.surface {
		if !w.n.MakeCurrent(w.display, NoSurface, NoSurface, NoContext) {
			w.logger().Warn("egl: failed to release current surface",
				"surface", fmt.Sprintf("%#x", w.surface),
				"error", ErrorString(w.n.GetError()))
		}
	}
	if !w.n.DestroySurface(w.display, w.surface) {
		w.logger().Warn("egl: failed to destroy surface",
			"surface", fmt.Sprintf("%#x", w.surface),
			"error", ErrorString(w.n.GetError()))
	}
	w.surface = NoSurface
}

// TerminateDisplay terminates the EGL display. Failures are logged.
func (w *WindowInfo) TerminateDisplay() {
	if w.display == NoDisplay {
		return
	}
	if !w.n.Terminate(w.display) {
		w.logger().Warn("egl: failed to terminate display",
			"display", fmt.Sprintf("%#x", w.display),
			"error", ErrorString(w.n.GetError()))
	}
	w.display = NoDisplay
}

// Release destroys the surface. The display is left to TerminateDisplay.
// Calls after the first have no effect.
func (w *WindowInfo) Release() {
	if w.released {
		return
	}
	w.DestroySurface()
	w.released = true
	leak.Untrack(w)
}

// Close calls Release. It always returns nil.
func (w *WindowInfo) Close() error {
	w.Release()
	return nil
}

func (w *WindowInfo) logger() *slog.Logger {
	if w.log != nil {
		return w.log
	}
	return Logger()
}

// reportLeak runs on the finalizer goroutine and must not call into EGL.
func (w *WindowInfo) reportLeak() {
	w.logger().Warn("egl: window info was garbage collected without Release",
		"handle", fmt.Sprintf("%#x", w.handle))
}
