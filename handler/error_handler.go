package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clientmeta/pkg/binder"
	"github.com/dmitrymomot/clientmeta/pkg/logger"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status code and a client-safe message.
// Validation failures win over everything else, then binder errors, then
// HTTPError. Anything else is an opaque 500.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusBadRequest
		info.Code = "validation_error"
		info.Message = "Validation failed"
		info.Details = validator.ExtractValidationErrors(err).Map()
	case errors.Is(err, binder.ErrBodyTooLarge):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Code = ErrRequestEntityTooLarge.Key
		info.Message = err.Error()
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = err.Error()
	case errors.Is(err, binder.ErrFailedToParseJSON):
		info.StatusCode = http.StatusBadRequest
		info.Code = "invalid_json"
		info.Message = err.Error()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler returns the error handler used by every endpoint: it logs
// the failure with the request id and writes a JSON error body.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
