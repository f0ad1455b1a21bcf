// SPDX-License-Identifier: Unlicense OR MIT

// Package eglinfo collects a description of an EGL display and its
// configs.
package eglinfo

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"eglwin.dev/eglwin/egl"
)

// Report describes an EGL display.
type Report struct {
	Vendor     string   `yaml:"vendor"`
	Version    string   `yaml:"version"`
	ClientAPIs []string `yaml:"client_apis,flow"`
	Extensions []string `yaml:"extensions"`
	Configs    []Config `yaml:"configs"`
	Pbuffer    *Pbuffer `yaml:"pbuffer,omitempty"`
}

// Config holds the attributes of an EGL config.
type Config struct {
	Handle        egl.Config `yaml:"-"`
	ID            int32      `yaml:"id"`
	Caveat        string     `yaml:"caveat"`
	VisualID      int32      `yaml:"visual_id"`
	BufferSize    int32      `yaml:"buffer_size"`
	Red           int32      `yaml:"red"`
	Green         int32      `yaml:"green"`
	Blue          int32      `yaml:"blue"`
	Alpha         int32      `yaml:"alpha"`
	Depth         int32      `yaml:"depth"`
	Stencil       int32      `yaml:"stencil"`
	SampleBuffers int32      `yaml:"sample_buffers"`
	Samples       int32      `yaml:"samples"`
	SurfaceType   []string   `yaml:"surface_type,flow"`
	Renderable    []string   `yaml:"renderable,flow"`
}

// Pbuffer is the outcome of creating a pbuffer surface.
type Pbuffer struct {
	Config int32  `yaml:"config"`
	Error  string `yaml:"error,omitempty"`
}

type bit struct {
	mask int32
	name string
}

var surfaceBits = []bit{
	{egl.WINDOW_BIT, "window"},
	{egl.PIXMAP_BIT, "pixmap"},
	{egl.PBUFFER_BIT, "pbuffer"},
}

var renderableBits = []bit{
	{egl.OPENGL_ES_BIT, "gles1"},
	{egl.OPENGL_ES2_BIT, "gles2"},
	{egl.OPENGL_ES3_BIT, "gles3"},
	{egl.OPENGL_BIT, "gl"},
	{egl.OPENVG_BIT, "vg"},
}

func names(v int32, bits []bit) []string {
	var s []string
	for _, b := range bits {
		if v&b.mask != 0 {
			s = append(s, b.name)
		}
	}
	return s
}

func caveat(v int32) string {
	switch v {
	case egl.NONE:
		return "none"
	case egl.SLOW_CONFIG:
		return "slow"
	case egl.NON_CONFORMANT_CONFIG:
		return "non-conformant"
	default:
		return fmt.Sprintf("0x%x", v)
	}
}

// Collect describes the initialized display d and up to maxConfigs of
// its configs matching attribs.
func Collect(n egl.Native, d egl.Display, attribs []int32, maxConfigs int) (*Report, error) {
	if maxConfigs <= 0 {
		return nil, fmt.Errorf("eglinfo: invalid config count %d", maxConfigs)
	}
	r := &Report{
		Vendor:     n.QueryString(d, egl.VENDOR),
		Version:    n.QueryString(d, egl.VERSION),
		ClientAPIs: strings.Fields(n.QueryString(d, egl.CLIENT_APIS)),
		Extensions: egl.Extensions(n, d),
	}
	cfgs := make([]egl.Config, maxConfigs)
	cnt, ok := n.ChooseConfig(d, attribs, cfgs)
	if !ok {
		return nil, &egl.Error{Op: "eglChooseConfig", Code: n.GetError(), Kind: egl.ErrMode}
	}
	for _, c := range cfgs[:cnt] {
		attr := func(a int32) int32 {
			v, _ := n.GetConfigAttrib(d, c, a)
			return v
		}
		r.Configs = append(r.Configs, Config{
			Handle:        c,
			ID:            attr(egl.CONFIG_ID),
			Caveat:        caveat(attr(egl.CONFIG_CAVEAT)),
			VisualID:      attr(egl.NATIVE_VISUAL_ID),
			BufferSize:    attr(egl.BUFFER_SIZE),
			Red:           attr(egl.RED_SIZE),
			Green:         attr(egl.GREEN_SIZE),
			Blue:          attr(egl.BLUE_SIZE),
			Alpha:         attr(egl.ALPHA_SIZE),
			Depth:         attr(egl.DEPTH_SIZE),
			Stencil:       attr(egl.STENCIL_SIZE),
			SampleBuffers: attr(egl.SAMPLE_BUFFERS),
			Samples:       attr(egl.SAMPLES),
			SurfaceType:   names(attr(egl.SURFACE_TYPE), surfaceBits),
			Renderable:    names(attr(egl.RENDERABLE_TYPE), renderableBits),
		})
	}
	return r, nil
}

// TryPbuffer creates and destroys a pbuffer surface matching the first
// config of r, and records the outcome in r.
func (r *Report) TryPbuffer(w *egl.WindowInfo) {
	if len(r.Configs) == 0 {
		r.Pbuffer = &Pbuffer{Error: "no configs"}
		return
	}
	c := r.Configs[0]
	r.Pbuffer = &Pbuffer{Config: c.ID}
	if err := w.CreatePbufferSurface(c.Handle); err != nil {
		r.Pbuffer.Error = err.Error()
		return
	}
	w.DestroySurface()
}

// Write encodes r as YAML.
func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
