// Package slog provides logging decorators for harvest services using log/slog.
// Successful operations are logged at debug level; failures at warn level,
// except persistence failures, which are logged at error level.
package slog

import "log/slog"

func levelFor(err error, failure slog.Level) slog.Level {
	if err != nil {
		return failure
	}
	return slog.LevelDebug
}
