// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	syscall "golang.org/x/sys/windows"

	"eglwin.dev/eglwin/utf8str"
)

var (
	libEGL                   = syscall.DLL{}
	_eglChooseConfig         *syscall.Proc
	_eglCreatePbufferSurface *syscall.Proc
	_eglCreateWindowSurface  *syscall.Proc
	_eglDestroySurface       *syscall.Proc
	_eglGetConfigAttrib      *syscall.Proc
	_eglGetCurrentSurface    *syscall.Proc
	_eglGetDisplay           *syscall.Proc
	_eglGetError             *syscall.Proc
	_eglInitialize           *syscall.Proc
	_eglMakeCurrent          *syscall.Proc
	_eglQueryString          *syscall.Proc
	_eglTerminate            *syscall.Proc
)

var (
	loadOnce sync.Once
	loadErr  error
)

type system struct{}

// System returns the EGL implementation of the platform. libEGL.dll is
// loaded on first use; set EGL_LIBRARY to load another DLL.
func System() (Native, error) {
	loadOnce.Do(func() {
		loadErr = loadDLLs()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return system{}, nil
}

func loadDLLs() error {
	name := os.Getenv("EGL_LIBRARY")
	if name == "" {
		name = "libEGL.dll"
	}
	if err := loadDLL(&libEGL, name); err != nil {
		return err
	}
	procs := map[string]**syscall.Proc{
		"eglChooseConfig":         &_eglChooseConfig,
		"eglCreatePbufferSurface": &_eglCreatePbufferSurface,
		"eglCreateWindowSurface":  &_eglCreateWindowSurface,
		"eglDestroySurface":       &_eglDestroySurface,
		"eglGetConfigAttrib":      &_eglGetConfigAttrib,
		"eglGetCurrentSurface":    &_eglGetCurrentSurface,
		"eglGetDisplay":           &_eglGetDisplay,
		"eglGetError":             &_eglGetError,
		"eglInitialize":           &_eglInitialize,
		"eglMakeCurrent":          &_eglMakeCurrent,
		"eglQueryString":          &_eglQueryString,
		"eglTerminate":            &_eglTerminate,
	}
	for name, proc := range procs {
		p, err := libEGL.FindProc(name)
		if err != nil {
			return fmt.Errorf("egl: failed to locate %s in %s: %w", name, libEGL.Name, err)
		}
		*proc = p
	}
	return nil
}

func loadDLL(dll *syscall.DLL, name string) error {
	handle, err := syscall.LoadLibraryEx(name, 0, syscall.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return fmt.Errorf("egl: failed to load %s: %v", name, err)
	}
	dll.Handle = handle
	dll.Name = name
	return nil
}

func attribsPtr(attribs []int32) uintptr {
	if len(attribs) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&attribs[0]))
}

func (system) GetDisplay(d NativeDisplay) Display {
	r, _, _ := _eglGetDisplay.Call(uintptr(d))
	return Display(r)
}

func (system) Initialize(d Display) (int32, int32, bool) {
	var maj, min int32
	r, _, _ := _eglInitialize.Call(uintptr(d), uintptr(unsafe.Pointer(&maj)), uintptr(unsafe.Pointer(&min)))
	return maj, min, r != 0
}

func (system) ChooseConfig(d Display, attribs []int32, configs []Config) (int, bool) {
	var cfgs uintptr
	if len(configs) > 0 {
		cfgs = uintptr(unsafe.Pointer(&configs[0]))
	}
	var n int32
	r, _, _ := _eglChooseConfig.Call(uintptr(d), attribsPtr(attribs), cfgs, uintptr(len(configs)), uintptr(unsafe.Pointer(&n)))
	issue34474KeepAlive(attribs)
	issue34474KeepAlive(configs)
	return int(n), r != 0
}

func (system) GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool) {
	var val int32
	r, _, _ := _eglGetConfigAttrib.Call(uintptr(d), uintptr(c), uintptr(attrib), uintptr(unsafe.Pointer(&val)))
	return val, r != 0
}

func (system) CreateWindowSurface(d Display, c Config, win NativeWindow, attribs []int32) Surface {
	s, _, _ := _eglCreateWindowSurface.Call(uintptr(d), uintptr(c), uintptr(win), attribsPtr(attribs))
	issue34474KeepAlive(attribs)
	return Surface(s)
}

func (system) CreatePbufferSurface(d Display, c Config, attribs []int32) Surface {
	s, _, _ := _eglCreatePbufferSurface.Call(uintptr(d), uintptr(c), attribsPtr(attribs))
	issue34474KeepAlive(attribs)
	return Surface(s)
}

func (system) GetCurrentSurface(readdraw int32) Surface {
	s, _, _ := _eglGetCurrentSurface.Call(uintptr(readdraw))
	return Surface(s)
}

func (system) MakeCurrent(d Display, draw, read Surface, ctx Context) bool {
	r, _, _ := _eglMakeCurrent.Call(uintptr(d), uintptr(draw), uintptr(read), uintptr(ctx))
	return r != 0
}

func (system) DestroySurface(d Display, s Surface) bool {
	r, _, _ := _eglDestroySurface.Call(uintptr(d), uintptr(s))
	return r != 0
}

func (system) Terminate(d Display) bool {
	r, _, _ := _eglTerminate.Call(uintptr(d))
	return r != 0
}

func (system) GetError() int32 {
	e, _, _ := _eglGetError.Call()
	return int32(e)
}

func (system) QueryString(d Display, name int32) string {
	r, _, _ := _eglQueryString.Call(uintptr(d), uintptr(name))
	s, _, err := utf8str.String(unsafe.Pointer(r))
	if err != nil {
		return ""
	}
	return s
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
