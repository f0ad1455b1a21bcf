// SPDX-License-Identifier: Unlicense OR MIT

// Package leak detects objects that become unreachable without being
// released.
//
// Reports run on the finalizer goroutine. They must not touch resources
// owned by the object; all they can safely do is record the leak.
package leak

import "runtime"

// Track arranges for report to be called if obj is garbage collected
// before Untrack(obj). report must not retain obj.
func Track[T any](obj *T, report func(obj *T)) {
	runtime.SetFinalizer(obj, report)
}

// Untrack disarms the report for obj.
func Untrack[T any](obj *T) {
	runtime.SetFinalizer(obj, nil)
}
