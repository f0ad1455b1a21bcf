// SPDX-License-Identifier: Unlicense OR MIT

package egl_test

import (
	"testing"

	"eglwin.dev/eglwin/egl"
	"eglwin.dev/eglwin/internal/egltest"
)

func TestExtensions(t *testing.T) {
	f := egltest.New()
	f.Strings[egl.EXTENSIONS] = " EGL_KHR_a  EGL_KHR_b "
	exts := egl.Extensions(f, f.Display)
	if len(exts) != 2 {
		t.Fatalf("got %q, want 2 extensions", exts)
	}
	if !egl.HasExtension(exts, "EGL_KHR_b") {
		t.Error("EGL_KHR_b not found")
	}
	if egl.HasExtension(exts, "EGL_KHR") {
		t.Error("prefix matched an extension")
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		code int32
		want string
	}{
		{0x3000, "EGL_SUCCESS"},
		{0x3005, "EGL_BAD_CONFIG"},
		{0x300e, "EGL_CONTEXT_LOST"},
		{0x1234, "unknown error"},
	}
	for _, test := range tests {
		if got := egl.ErrorString(test.code); got != test.want {
			t.Errorf("ErrorString(0x%x) = %q, want %q", test.code, got, test.want)
		}
	}
}
