package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

type jsonConfig struct {
	maxSize    int64
	allowEmpty bool
	lenient    bool
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxSize limits the accepted body size in bytes.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// AllowEmpty accepts a request without a body (and then without a
// Content-Type) and leaves the target untouched. Presence of required
// fields is left to validation.
func AllowEmpty() JSONOption {
	return func(c *jsonConfig) {
		c.allowEmpty = true
	}
}

// IgnoreOtherMediaTypes treats a body sent without a JSON Content-Type as
// absent: the target is left untouched instead of failing with
// ErrMissingContentType or ErrUnsupportedMediaType.
func IgnoreOtherMediaTypes() JSONOption {
	return func(c *jsonConfig) {
		c.lenient = true
	}
}

// JSON creates a JSON binder function. Targets implementing json.Unmarshaler
// control their own decoding, so lenient records can be bound too.
//
// Example:
//
//	http.HandleFunc("/collect", handler.Wrap(collect,
//		handler.WithBinder[CollectRequest](binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		body, err := readBody(r, cfg.maxSize)
		if err != nil {
			return err
		}

		if len(bytes.TrimSpace(body)) == 0 {
			if cfg.allowEmpty {
				return nil
			}
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
			if cfg.lenient {
				return nil
			}
			return err
		}

		decoder := json.NewDecoder(bytes.NewReader(body))

		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return nil
	}
}

func readBody(r *http.Request, maxSize int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > maxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxSize)
	}
	return body, nil
}

func checkContentType(contentType string) error {
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	if !strings.EqualFold(mediaType, "application/json") {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}
