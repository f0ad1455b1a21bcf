// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Extensions returns the extensions supported by the display d.
func Extensions(n Native, d Display) []string {
	return strings.Fields(n.QueryString(d, EXTENSIONS))
}

// HasExtension reports whether ext is in exts.
func HasExtension(exts []string, ext string) bool {
	return slices.Contains(exts, ext)
}
