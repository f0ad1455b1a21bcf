// SPDX-License-Identifier: Unlicense OR MIT

//go:build !((linux || freebsd || openbsd) && cgo) && !windows

package egl

import (
	"fmt"
	"runtime"
)

// System returns the EGL implementation of the platform.
func System() (Native, error) {
	return nil, fmt.Errorf("egl: not supported on %s (cgo required on unix)", runtime.GOOS)
}
