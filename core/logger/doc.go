// Package logger provides structured logging attribute helpers built on Go's
// standard slog package.
//
// Components of this module never construct their own handlers; they accept a
// *slog.Logger through a WithLogger option and decorate records with the helpers
// defined here so log output stays uniform across the engine, the loaders and
// the HTTP middleware.
//
// # Attribute Helpers
//
//	log.Warn("loader failed",
//		logger.Component("loader_chain"),
//		logger.Loader("s3"),
//		logger.BaseName("App.Resources.Strings"),
//		logger.Locale("fr-FR"),
//		logger.Error(err),
//	)
//
//	log.Debug("load finished",
//		logger.Event("load_finish"),
//		logger.Result("found"),
//		logger.Duration(time.Since(start)),
//	)
//
// # Nil Safety
//
// Helpers return an empty slog.Attr for nil or empty inputs, which slog
// handlers drop, so callers never need to guard optional values:
//
//	log.Info("done", logger.Error(err)) // no "error" key when err == nil
package logger
