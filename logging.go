// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

import (
	"time"

	"go.uber.org/zap"
)

// LoggedTask wraps fn so that its start, completion, and any failure are
// recorded through logger at debug/error level, named by label. The
// wrapped function is otherwise unchanged: LoggedTask composes with
// [MakeTask] and [Run] exactly like the function it wraps.
//
// This is the same shape as the instrumented-task wrapper the teacher
// keeps in its optional observability package, narrowed to the one
// signal this module actually has to report: a task ran, how long it
// took, and whether it failed.
func LoggedTask[T any](logger *zap.Logger, label string, fn TaskFunc[T]) TaskFunc[T] {
	return func() (T, error) {
		logger.Debug("task starting", zap.String("task", label))
		start := time.Now()
		value, err := fn()
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("task failed",
				zap.String("task", label),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		} else {
			logger.Debug("task completed",
				zap.String("task", label),
				zap.Duration("elapsed", elapsed),
			)
		}
		return value, err
	}
}

// logExecutorRun emits one structured summary line for a completed
// [Executor.RunDataset] call: the strategy name, chunk/worker counts,
// the reduced result, and total elapsed wall-clock time in seconds,
// measured the same way as every [TimingRecord.TotalChunkTime].
func logExecutorRun(logger *zap.Logger, strategy string, chunkCount int, result uint32, elapsedSeconds float64) {
	logger.Info("dataset processed",
		zap.String("strategy", strategy),
		zap.Int("chunks", chunkCount),
		zap.Int("workers", WorkerCount),
		zap.Uint32("result", result),
		zap.Float64("elapsed_seconds", elapsedSeconds),
	)
}
