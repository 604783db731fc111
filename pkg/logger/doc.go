// Package logger builds *slog.Logger instances with functional options and
// transparent injection of request-scoped values stored in context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// before a record is written. Pair it with requestid.LoggerExtractor and
// clientip.LoggerExtractor to tag each record with the request ID and the
// client address.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "clientmeta"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "cookies set", logger.Component("api"))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it is safe to pass unconditionally.
package logger
