// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, applies the minimum level and attaches any static attributes.
// Environment presets (WithDevelopment, WithStaging, WithProduction,
// WithEnvironment) set format, level and the "service"/"env" attributes in one
// call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "doordemo"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Debug("door transition applied",
//	    logger.DoorID(id),
//	    logger.Event("lock"),
//	    logger.Transition("closed_unlocked", "closed_locked"),
//	)
//
// Discard returns a logger that drops everything; library types default to it
// so they stay silent unless a logger is injected.
package logger
