// Package binder decodes HTTP request bodies into typed values for the
// handler package.
//
// JSON enforces a JSON content type and a body size limit (1MB by default)
// and rejects trailing data after the first JSON value. Decoding errors wrap
// one of the package sentinel errors so callers can map them to status codes:
//
//	err := binder.JSON(binder.AllowEmpty())(r, &req)
//	switch {
//	case errors.Is(err, binder.ErrBodyTooLarge):
//		// 413
//	case errors.Is(err, binder.ErrUnsupportedMediaType):
//		// 415
//	case err != nil:
//		// 400
//	}
package binder
