// Package slog provides logging decorators for the jobscrape interfaces.
// Successful calls are logged at debug level and failures at warn level.
package slog

import (
	"context"
	"log/slog"
)

// level returns the level for a call that returned err.
func level(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

// log emits msg with attrs at the level matching err.
func log(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "err", err)
	}
	logger.Log(context.Background(), level(err), msg, args...)
}
