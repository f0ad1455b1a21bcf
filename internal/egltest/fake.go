// SPDX-License-Identifier: Unlicense OR MIT

// Package egltest provides an in-memory egl.Native for tests.
package egltest

import (
	"fmt"

	"golang.org/x/exp/slices"

	"eglwin.dev/eglwin/egl"
)

// Fake implements egl.Native. It records the calls it receives and
// returns the results configured in its fields.
type Fake struct {
	// Calls lists the names of the EGL functions called, in order.
	Calls []string

	// Display is returned by GetDisplay.
	Display     egl.Display
	InitFails   bool
	Major       int32
	Minor       int32
	Terminated  bool
	Initialized bool

	// Configs are the configs known to the display, with their
	// attributes. ChooseConfig matches exact values except for
	// SURFACE_TYPE and RENDERABLE_TYPE, which are masks.
	Configs map[egl.Config]map[int32]int32

	// Queried records the attributes passed to GetConfigAttrib.
	Queried []int32
	// Chosen records the attribute lists passed to ChooseConfig.
	Chosen [][]int32

	// NextSurface is the handle of the next created surface. NoSurface
	// makes surface creation fail.
	NextSurface egl.Surface
	// SurfaceConfig and SurfaceAttribs record the last surface creation.
	SurfaceConfig  egl.Config
	SurfaceAttribs []int32
	Surfaces       map[egl.Surface]bool

	// Current is the current draw surface.
	Current egl.Surface

	DestroyFails   bool
	TerminateFails bool

	// Error is returned by GetError.
	Error int32

	Strings map[int32]string
}

// New returns a Fake with display 1, version 1.4 and a single RGBA8888
// window config with handle 1.
func New() *Fake {
	return &Fake{
		Display:     1,
		Major:       1,
		Minor:       4,
		NextSurface: 0x100,
		Surfaces:    make(map[egl.Surface]bool),
		Configs: map[egl.Config]map[int32]int32{
			1: {
				egl.CONFIG_ID:       1,
				egl.SURFACE_TYPE:    egl.WINDOW_BIT,
				egl.RENDERABLE_TYPE: egl.OPENGL_ES2_BIT,
				egl.RED_SIZE:        8,
				egl.GREEN_SIZE:      8,
				egl.BLUE_SIZE:       8,
				egl.ALPHA_SIZE:      8,
			},
		},
		Strings: map[int32]string{
			egl.VENDOR:      "Fake",
			egl.VERSION:     "1.4 Fake",
			egl.CLIENT_APIS: "OpenGL_ES",
			egl.EXTENSIONS:  "EGL_KHR_surfaceless_context EGL_KHR_gl_colorspace",
		},
	}
}

// Count returns the number of calls to the named function.
func (f *Fake) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Index returns the position of the first call to name, or -1.
func (f *Fake) Index(name string) int {
	return slices.Index(f.Calls, name)
}

func (f *Fake) call(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *Fake) checkDisplay(d egl.Display) bool {
	if d != f.Display || !f.Initialized {
		f.Error = 0x3008 // EGL_BAD_DISPLAY
		return false
	}
	return true
}

func (f *Fake) GetDisplay(d egl.NativeDisplay) egl.Display {
	f.call("eglGetDisplay")
	return f.Display
}

func (f *Fake) Initialize(d egl.Display) (int32, int32, bool) {
	f.call("eglInitialize")
	if f.InitFails || d != f.Display {
		f.Error = 0x3001 // EGL_NOT_INITIALIZED
		return 0, 0, false
	}
	f.Initialized = true
	return f.Major, f.Minor, true
}

func (f *Fake) ChooseConfig(d egl.Display, attribs []int32, configs []egl.Config) (int, bool) {
	f.call("eglChooseConfig")
	f.Chosen = append(f.Chosen, slices.Clone(attribs))
	if !f.checkDisplay(d) {
		return 0, false
	}
	if len(attribs) == 0 || attribs[len(attribs)-1] != egl.NONE || len(attribs)%2 != 1 {
		f.Error = 0x3004 // EGL_BAD_ATTRIBUTE
		return 0, false
	}
	var ids []egl.Config
	for id := range f.Configs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	n := 0
	for _, id := range ids {
		if n == len(configs) {
			break
		}
		if matches(f.Configs[id], attribs) {
			configs[n] = id
			n++
		}
	}
	return n, true
}

func matches(cfg map[int32]int32, attribs []int32) bool {
	for i := 0; i+1 < len(attribs); i += 2 {
		a, v := attribs[i], attribs[i+1]
		switch a {
		case egl.SURFACE_TYPE, egl.RENDERABLE_TYPE:
			if cfg[a]&v != v {
				return false
			}
		default:
			if cfg[a] != v {
				return false
			}
		}
	}
	return true
}

func (f *Fake) GetConfigAttrib(d egl.Display, c egl.Config, attrib int32) (int32, bool) {
	f.call("eglGetConfigAttrib")
	f.Queried = append(f.Queried, attrib)
	cfg, ok := f.Configs[c]
	if !ok {
		f.Error = 0x3005 // EGL_BAD_CONFIG
		return 0, false
	}
	return cfg[attrib], true
}

func (f *Fake) CreateWindowSurface(d egl.Display, c egl.Config, win egl.NativeWindow, attribs []int32) egl.Surface {
	f.call("eglCreateWindowSurface")
	return f.create(c, attribs)
}

func (f *Fake) CreatePbufferSurface(d egl.Display, c egl.Config, attribs []int32) egl.Surface {
	f.call("eglCreatePbufferSurface")
	return f.create(c, attribs)
}

func (f *Fake) create(c egl.Config, attribs []int32) egl.Surface {
	f.SurfaceConfig = c
	f.SurfaceAttribs = slices.Clone(attribs)
	s := f.NextSurface
	if s == egl.NoSurface {
		f.Error = 0x300b // EGL_BAD_NATIVE_WINDOW
		return egl.NoSurface
	}
	f.Surfaces[s] = true
	f.NextSurface++
	return s
}

func (f *Fake) GetCurrentSurface(readdraw int32) egl.Surface {
	f.call("eglGetCurrentSurface")
	if readdraw != egl.DRAW && readdraw != egl.READ {
		panic(fmt.Sprintf("egltest: invalid readdraw 0x%x", readdraw))
	}
	return f.Current
}

func (f *Fake) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	f.call("eglMakeCurrent")
	f.Current = draw
	return true
}

func (f *Fake) DestroySurface(d egl.Display, s egl.Surface) bool {
	f.call("eglDestroySurface")
	if f.DestroyFails || !f.Surfaces[s] {
		f.Error = 0x300d // EGL_BAD_SURFACE
		return false
	}
	delete(f.Surfaces, s)
	return true
}

func (f *Fake) Terminate(d egl.Display) bool {
	f.call("eglTerminate")
	if f.TerminateFails || d != f.Display {
		f.Error = 0x3008 // EGL_BAD_DISPLAY
		return false
	}
	f.Initialized = false
	f.Terminated = true
	return true
}

func (f *Fake) GetError() int32 {
	f.call("eglGetError")
	err := f.Error
	f.Error = 0x3000 // EGL_SUCCESS
	return err
}

func (f *Fake) QueryString(d egl.Display, name int32) string {
	f.call("eglQueryString")
	return f.Strings[name]
}
