package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clientmeta/handler"
	"github.com/dmitrymomot/clientmeta/pkg/logger"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/pkg/validator"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(slog.LevelDebug),
	)
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("client error logged at warn", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		eh := handler.NewErrorHandler(newTestLogger(&buf))

		req := httptest.NewRequest(http.MethodPost, "/collect", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-42"))
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, req), validator.Apply(validator.RequiredString("language", "")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"field is required"}, decodeError(t, w).Details["language"])

		out := buf.String()
		assert.Contains(t, out, `"level":"WARN"`)
		assert.Contains(t, out, `"request_id":"req-42"`)
		assert.Contains(t, out, `"status_code":400`)
		assert.Contains(t, out, `"path":"/collect"`)
	})

	t.Run("server error logged at error without leaking", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		eh := handler.NewErrorHandler(newTestLogger(&buf))

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "secret detail")
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil)
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
