// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux || freebsd || openbsd) && cgo

package egl

/*
#cgo linux,!android pkg-config: egl
#cgo freebsd openbsd android LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo CFLAGS: -DEGL_NO_X11

#include <stdint.h>
#include <EGL/egl.h>

// The native types differ between platforms; pass them as integers.
static EGLDisplay eglwinGetDisplay(uintptr_t disp) {
	return eglGetDisplay((EGLNativeDisplayType)disp);
}

static EGLSurface eglwinCreateWindowSurface(EGLDisplay disp, EGLConfig conf, uintptr_t win, const EGLint *attribs) {
	return eglCreateWindowSurface(disp, conf, (EGLNativeWindowType)win, attribs);
}
*/
import "C"

import (
	"unsafe"

	"eglwin.dev/eglwin/utf8str"
)

type system struct{}

// System returns the EGL implementation of the platform.
func System() (Native, error) {
	return system{}, nil
}

func cDisplay(d Display) C.EGLDisplay {
	return C.EGLDisplay(unsafe.Pointer(uintptr(d)))
}

func cConfig(c Config) C.EGLConfig {
	return C.EGLConfig(unsafe.Pointer(uintptr(c)))
}

func cSurface(s Surface) C.EGLSurface {
	return C.EGLSurface(unsafe.Pointer(uintptr(s)))
}

func cContext(c Context) C.EGLContext {
	return C.EGLContext(unsafe.Pointer(uintptr(c)))
}

// cAttribs returns a pointer to the attribute list, or nil for an empty
// list.
func cAttribs(attribs []int32) *C.EGLint {
	if len(attribs) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&attribs[0]))
}

func (system) GetDisplay(d NativeDisplay) Display {
	return Display(uintptr(C.eglwinGetDisplay(C.uintptr_t(d))))
}

func (system) Initialize(d Display) (int32, int32, bool) {
	var maj, min C.EGLint
	ret := C.eglInitialize(cDisplay(d), &maj, &min)
	return int32(maj), int32(min), ret == C.EGL_TRUE
}

func (system) ChooseConfig(d Display, attribs []int32, configs []Config) (int, bool) {
	var cfgs *C.EGLConfig
	if len(configs) > 0 {
		cfgs = (*C.EGLConfig)(unsafe.Pointer(&configs[0]))
	}
	var n C.EGLint
	ret := C.eglChooseConfig(cDisplay(d), cAttribs(attribs), cfgs, C.EGLint(len(configs)), &n)
	return int(n), ret == C.EGL_TRUE
}

func (system) GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool) {
	var val C.EGLint
	ret := C.eglGetConfigAttrib(cDisplay(d), cConfig(c), C.EGLint(attrib), &val)
	return int32(val), ret == C.EGL_TRUE
}

func (system) CreateWindowSurface(d Display, c Config, win NativeWindow, attribs []int32) Surface {
	s := C.eglwinCreateWindowSurface(cDisplay(d), cConfig(c), C.uintptr_t(win), cAttribs(attribs))
	return Surface(uintptr(s))
}

func (system) CreatePbufferSurface(d Display, c Config, attribs []int32) Surface {
	s := C.eglCreatePbufferSurface(cDisplay(d), cConfig(c), cAttribs(attribs))
	return Surface(uintptr(s))
}

func (system) GetCurrentSurface(readdraw int32) Surface {
	return Surface(uintptr(C.eglGetCurrentSurface(C.EGLint(readdraw))))
}

func (system) MakeCurrent(d Display, draw, read Surface, ctx Context) bool {
	return C.eglMakeCurrent(cDisplay(d), cSurface(draw), cSurface(read), cContext(ctx)) == C.EGL_TRUE
}

func (system) DestroySurface(d Display, s Surface) bool {
	return C.eglDestroySurface(cDisplay(d), cSurface(s)) == C.EGL_TRUE
}

func (system) Terminate(d Display) bool {
	return C.eglTerminate(cDisplay(d)) == C.EGL_TRUE
}

func (system) GetError() int32 {
	return int32(C.eglGetError())
}

func (system) QueryString(d Display, name int32) string {
	s, _, err := utf8str.String(unsafe.Pointer(C.eglQueryString(cDisplay(d), C.EGLint(name))))
	if err != nil {
		return ""
	}
	return s
}
