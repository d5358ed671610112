// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tplobs

import (
	"time"

	"go.uber.org/zap"
)

// Logged wraps body with structured start/completion logging at the debug
// level, using the given operation name to correlate the pair of log lines.
// It uses zap's global logger; install one with zap.ReplaceGlobals before
// running any decorated task if the default no-op logger is not desired.
func Logged[T any](operationName string, body func() T) func() T {
	return func() T {
		logger := zap.L()

		logger.Debug("starting task",
			zap.String("operation", operationName),
			zap.String("component", "tplobs"))

		start := time.Now()
		result := body()
		duration := time.Since(start)

		logger.Debug("task completed",
			zap.String("operation", operationName),
			zap.String("component", "tplobs"),
			zap.Duration("duration", duration))

		return result
	}
}
