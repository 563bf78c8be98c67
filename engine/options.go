// SPDX-License-Identifier: MIT

package engine

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
