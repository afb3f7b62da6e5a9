// Package logger provides a factory for log/slog loggers with functional
// options and per-environment presets, plus typed attribute helpers so log
// keys stay consistent across the codebase.
//
// Usage:
//
//	log := logger.New(logger.WithEnvironment(env, "lostfound"))
//	log.Info("item reported", logger.ItemID(id), logger.Recipients(n))
package logger
