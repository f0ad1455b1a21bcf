// SPDX-License-Identifier: Unlicense OR MIT

// Package egl wraps an EGL display, a native window and the surface
// drawn into it, and drives them through surface creation and teardown.
//
// The EGL API itself is reached through the Native interface. System
// returns the platform implementation; tests substitute their own.
package egl

type (
	// Display is an EGLDisplay handle.
	Display uintptr
	// Config is an EGLConfig handle.
	Config uintptr
	// Surface is an EGLSurface handle.
	Surface uintptr
	// Context is an EGLContext handle.
	Context uintptr
	// NativeDisplay is the windowing system's display, as passed to
	// eglGetDisplay.
	NativeDisplay uintptr
	// NativeWindow is the windowing system's window, as passed to
	// eglCreateWindowSurface.
	NativeWindow uintptr
)

// The zero handles mean "none".
const (
	NoDisplay      Display       = 0
	NoSurface      Surface       = 0
	NoContext      Context       = 0
	DefaultDisplay NativeDisplay = 0
)

// Native is the subset of the EGL API used by this package. Methods map
// one to one to the EGL functions of the same name.
type Native interface {
	GetDisplay(d NativeDisplay) Display
	Initialize(d Display) (major, minor int32, ok bool)
	// ChooseConfig fills configs with up to len(configs) matches and
	// returns the number of configs written.
	ChooseConfig(d Display, attribs []int32, configs []Config) (int, bool)
	GetConfigAttrib(d Display, c Config, attrib int32) (int32, bool)
	CreateWindowSurface(d Display, c Config, win NativeWindow, attribs []int32) Surface
	CreatePbufferSurface(d Display, c Config, attribs []int32) Surface
	// GetCurrentSurface takes DRAW or READ.
	GetCurrentSurface(readdraw int32) Surface
	MakeCurrent(d Display, draw, read Surface, ctx Context) bool
	DestroySurface(d Display, s Surface) bool
	Terminate(d Display) bool
	GetError() int32
	QueryString(d Display, name int32) string
}

const (
	BUFFER_SIZE      = 0x3020
	ALPHA_SIZE       = 0x3021
	BLUE_SIZE        = 0x3022
	GREEN_SIZE       = 0x3023
	RED_SIZE         = 0x3024
	DEPTH_SIZE       = 0x3025
	STENCIL_SIZE     = 0x3026
	CONFIG_CAVEAT    = 0x3027
	CONFIG_ID        = 0x3028
	NATIVE_VISUAL_ID = 0x302e
	SAMPLES          = 0x3031
	SAMPLE_BUFFERS   = 0x3032
	SURFACE_TYPE     = 0x3033
	NONE             = 0x3038
	RENDERABLE_TYPE  = 0x3040
	HEIGHT           = 0x3056
	WIDTH            = 0x3057
	TEXTURE_FORMAT   = 0x3080
	TEXTURE_TARGET   = 0x3081
	NO_TEXTURE       = 0x305c
	DRAW             = 0x3059
	READ             = 0x305a

	SLOW_CONFIG           = 0x3050
	NON_CONFORMANT_CONFIG = 0x3051

	VENDOR      = 0x3053
	VERSION     = 0x3054
	EXTENSIONS  = 0x3055
	CLIENT_APIS = 0x308d

	PBUFFER_BIT = 0x0001
	PIXMAP_BIT  = 0x0002
	WINDOW_BIT  = 0x0004

	OPENGL_ES_BIT  = 0x0001
	OPENVG_BIT     = 0x0002
	OPENGL_ES2_BIT = 0x0004
	OPENGL_BIT     = 0x0008
	OPENGL_ES3_BIT = 0x0040
)
