// Package logger builds *slog.Logger instances from functional options and
// provides helper attribute constructors so attribute keys stay consistent.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("cookiefmt")),
//	)
//	log.Error("rejected line", logger.Line(3), logger.Error(err))
//
// New defaults to JSON output on stderr at INFO level. WithFormat panics on an
// unknown format so misconfiguration is caught at startup.
package logger
