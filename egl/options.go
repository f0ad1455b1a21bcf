// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "log/slog"

// Option configures a WindowInfo.
type Option func(*options)

type options struct {
	display Display
	surface Surface
	logger  *slog.Logger
}

// WithDisplay uses an existing EGL display instead of the default
// display. The display is initialized all the same, which EGL treats as
// a no-op for a display that is already initialized.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithSurface hands an existing surface to the WindowInfo, which then
// owns it.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithLogger overrides the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
