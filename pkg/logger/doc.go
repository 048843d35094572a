// Package logger builds *slog.Logger instances and provides attribute helpers
// with consistent key names.
//
// New assembles a text or JSON handler from functional options and wraps it
// with NewLogHandlerDecorator so registered ContextExtractor callbacks run on
// every record. NewFromConfig derives the options from a Config loaded from
// APP_ENV, LOG_LEVEL and LOG_FORMAT:
//
//	log, err := logger.NewFromConfig(cfg.Log,
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
// Attribute helpers such as SessionID, ContentType, Category, Transition and
// Error keep naming uniform across packages. Error and Errors return an empty
// attribute for nil errors, so they can be passed unconditionally:
//
//	log.Info("qr rendered", logger.SessionID(id), logger.Error(err))
package logger
