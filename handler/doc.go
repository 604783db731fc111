// Package handler provides type-safe HTTP handlers that bind a request into a
// typed value, run business logic and render a Response.
//
// A handler is a generic function of a Context and a request value:
//
//	collect := handler.HandlerFunc[CollectRequest](
//		func(ctx handler.Context, req CollectRequest) handler.Response {
//			if err := req.Validate(); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(map[string]any{"status": "success"})
//		},
//	)
//
// Wrap turns it into an http.HandlerFunc. The binder runs first; a
// binding error, a nil Response or a failed Render goes to the ErrorHandler.
//
// # Errors
//
// JSONError and NewErrorHandler share one classification:
//
//   - validator.ValidationErrors: 400 with per-field details
//   - binder.ErrFailedToParseJSON: 400
//   - binder.ErrUnsupportedMediaType, binder.ErrMissingContentType: 415
//   - binder.ErrBodyTooLarge: 413
//   - HTTPError: its own code
//   - anything else: 500 with a generic message
//
// Every error body has the shape {"error":{"code","message","details"}}.
// NewErrorHandler logs 4xx at warn and 5xx at error, tagged with the request
// id from the requestid package.
package handler
