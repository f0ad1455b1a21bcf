// SPDX-License-Identifier: Unlicense OR MIT

package eglinfo

import (
	"bytes"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"eglwin.dev/eglwin/egl"
	"eglwin.dev/eglwin/internal/egltest"
)

func newDisplay(t *testing.T) (*egltest.Fake, *egl.WindowInfo) {
	t.Helper()
	f := egltest.New()
	f.Configs[2] = map[int32]int32{
		egl.CONFIG_ID:        2,
		egl.SURFACE_TYPE:     egl.PBUFFER_BIT | egl.WINDOW_BIT,
		egl.RENDERABLE_TYPE:  egl.OPENGL_ES2_BIT | egl.OPENGL_ES3_BIT,
		egl.RED_SIZE:         8,
		egl.GREEN_SIZE:       8,
		egl.BLUE_SIZE:        8,
		egl.DEPTH_SIZE:       24,
		egl.BUFFER_SIZE:      24,
		egl.CONFIG_CAVEAT:    egl.SLOW_CONFIG,
		egl.NATIVE_VISUAL_ID: 33,
	}
	w, err := egl.NewWindowInfo(f, 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Release)
	return f, w
}

func TestCollect(t *testing.T) {
	f, w := newDisplay(t)
	r, err := Collect(f, w.Display(), []int32{egl.SURFACE_TYPE, egl.PBUFFER_BIT, egl.NONE}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if r.Vendor != "Fake" || r.Version != "1.4 Fake" {
		t.Errorf("vendor %q, version %q", r.Vendor, r.Version)
	}
	if len(r.ClientAPIs) != 1 || r.ClientAPIs[0] != "OpenGL_ES" {
		t.Errorf("client APIs = %q", r.ClientAPIs)
	}
	if len(r.Configs) != 1 {
		t.Fatalf("got %d configs, want 1", len(r.Configs))
	}
	c := r.Configs[0]
	if c.ID != 2 || c.Depth != 24 || c.BufferSize != 24 || c.VisualID != 33 || c.Caveat != "slow" {
		t.Errorf("config = %+v", c)
	}
	if len(c.SurfaceType) != 2 || c.SurfaceType[0] != "window" || c.SurfaceType[1] != "pbuffer" {
		t.Errorf("surface type = %q", c.SurfaceType)
	}
	if len(c.Renderable) != 2 || c.Renderable[0] != "gles2" || c.Renderable[1] != "gles3" {
		t.Errorf("renderable = %q", c.Renderable)
	}
}

func TestCollectErrors(t *testing.T) {
	f, w := newDisplay(t)
	if _, err := Collect(f, w.Display(), []int32{egl.NONE}, 0); err == nil {
		t.Error("zero config count accepted")
	}
	// An unterminated attribute list is rejected by EGL.
	_, err := Collect(f, w.Display(), []int32{egl.SURFACE_TYPE}, 1)
	if !errors.Is(err, egl.ErrMode) {
		t.Errorf("got %v, want ErrMode", err)
	}
}

func TestTryPbuffer(t *testing.T) {
	f, w := newDisplay(t)
	r, err := Collect(f, w.Display(), []int32{egl.NONE}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(r.Configs))
	}
	window, pbuffer := r.Configs[0], r.Configs[1]

	r.Configs = []Config{pbuffer}
	r.TryPbuffer(w)
	if r.Pbuffer == nil || r.Pbuffer.Config != 2 || r.Pbuffer.Error != "" {
		t.Fatalf("pbuffer = %+v", r.Pbuffer)
	}
	if f.Count("eglCreatePbufferSurface") != 1 || f.Count("eglDestroySurface") != 1 {
		t.Errorf("calls = %v", f.Calls)
	}

	// Config 1 supports windows only and no pbuffer config matches it.
	r.Configs = []Config{window}
	r.TryPbuffer(w)
	if r.Pbuffer.Config != 1 || r.Pbuffer.Error == "" {
		t.Errorf("pbuffer = %+v, want failure for config 1", r.Pbuffer)
	}

	r.Configs = nil
	r.TryPbuffer(w)
	if r.Pbuffer.Error != "no configs" {
		t.Errorf("pbuffer = %+v, want no configs", r.Pbuffer)
	}
}

func TestCaveat(t *testing.T) {
	tests := []struct {
		v    int32
		want string
	}{
		{egl.NONE, "none"},
		{egl.SLOW_CONFIG, "slow"},
		{egl.NON_CONFORMANT_CONFIG, "non-conformant"},
		{0, "0x0"},
	}
	for _, test := range tests {
		if got := caveat(test.v); got != test.want {
			t.Errorf("caveat(0x%x) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestWrite(t *testing.T) {
	r := &Report{
		Vendor:     "Fake",
		Version:    "1.5",
		ClientAPIs: []string{"OpenGL_ES"},
		Configs: []Config{{
			ID:          3,
			Red:         8,
			SurfaceType: []string{"pbuffer"},
		}},
		Pbuffer: &Pbuffer{Config: 3},
	}
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if got["vendor"] != "Fake" {
		t.Errorf("vendor = %v", got["vendor"])
	}
	if !bytes.Contains(buf.Bytes(), []byte("client_apis: [OpenGL_ES]")) {
		t.Errorf("client_apis not in flow style:\n%s", buf.String())
	}
	if bytes.Contains(buf.Bytes(), []byte("handle")) {
		t.Errorf("config handle leaked into output:\n%s", buf.String())
	}
}
