// SPDX-License-Identifier: Unlicense OR MIT

package egl_test

import (
	"testing"

	"eglwin.dev/eglwin/egl"
)

func TestSystemPbuffer(t *testing.T) {
	n, err := egl.System()
	if err != nil {
		t.Skipf("EGL not supported: %v", err)
	}
	w, err := egl.NewWindowInfo(n, 0)
	if err != nil {
		t.Skipf("no EGL display: %v", err)
	}
	defer w.TerminateDisplay()
	defer w.Release()

	attribs := []int32{egl.SURFACE_TYPE, egl.PBUFFER_BIT, egl.NONE}
	var cfgs [1]egl.Config
	if cnt, ok := n.ChooseConfig(w.Display(), attribs, cfgs[:]); !ok || cnt == 0 {
		t.Skip("no pbuffer configs")
	}
	if err := w.CreatePbufferSurface(cfgs[0]); err != nil {
		t.Fatal(err)
	}
	if w.Surface() == egl.NoSurface {
		t.Fatal("no surface")
	}
	if v := n.QueryString(w.Display(), egl.VERSION); v == "" {
		t.Error("empty EGL_VERSION")
	}
	w.DestroySurface()
	if w.Surface() != egl.NoSurface {
		t.Error("surface not cleared")
	}
}
