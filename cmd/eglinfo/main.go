// SPDX-License-Identifier: Unlicense OR MIT

// Command eglinfo prints the EGL implementation details and configs of
// the default display as YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"eglwin.dev/eglwin/egl"
	"eglwin.dev/eglwin/internal/eglinfo"
)

var (
	verbose = flag.Bool("v", false, "log EGL diagnostics to stderr")
	pbuffer = flag.Bool("pbuffer", false, "list pbuffer configs only, and create a pbuffer surface from the first")
	maxCfgs = flag.Int("max", 16, "maximum number of configs to list")
)

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "eglinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	egl.SetLogger(logger)

	n, err := egl.System()
	if err != nil {
		return err
	}
	w, err := egl.NewWindowInfo(n, 0)
	if err != nil {
		return err
	}
	defer w.TerminateDisplay()
	defer w.Release()
	major, minor := w.Version()
	logger.Debug("initialized display", "display", fmt.Sprintf("%#x", w.Display()), "version", fmt.Sprintf("%d.%d", major, minor))

	attribs := []int32{egl.NONE}
	if *pbuffer {
		attribs = []int32{egl.SURFACE_TYPE, egl.PBUFFER_BIT, egl.NONE}
	}
	r, err := eglinfo.Collect(n, w.Display(), attribs, *maxCfgs)
	if err != nil {
		return err
	}
	if *pbuffer {
		r.TryPbuffer(w)
	}
	if err := r.Write(os.Stdout); err != nil {
		return err
	}
	if r.Pbuffer != nil && r.Pbuffer.Error != "" {
		return errors.New(r.Pbuffer.Error)
	}
	return nil
}
