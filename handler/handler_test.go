package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientmeta/handler"
	"github.com/dmitrymomot/clientmeta/pkg/binder"
)

type greetRequest struct {
	Name string `json:"name"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()

	var body handler.ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := handler.HandlerFunc[greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return handler.JSON(map[string]string{"hello": req.Name})
		},
	)

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinder[greetRequest](binder.JSON()))

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"hello":"Ada"}`, w.Body.String())
	})

	t.Run("binder error goes to default error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinder[greetRequest](binder.JSON()))

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_json", decodeError(t, w).Code)
	})

	t.Run("no binder leaves request zero", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hello":""}`, w.Body.String())
	})

	t.Run("later binder replaces earlier", func(t *testing.T) {
		t.Parallel()
		first := func(r *http.Request, v any) error { return errors.New("unused") }
		second := func(r *http.Request, v any) error {
			v.(*greetRequest).Name = "second"
			return nil
		}
		h := handler.Wrap(greet,
			handler.WithBinder[greetRequest](first),
			handler.WithBinder[greetRequest](second),
		)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.JSONEq(t, `{"hello":"second"}`, w.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(ctx handler.Context, req greetRequest) handler.Response { return nil },
			handler.WithErrorHandler[greetRequest](func(ctx handler.Context, err error) {
				got = err
			}),
		)

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("render failed")
}

func TestWrap_RenderError(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return failingResponse{}
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, "internal_server_error", detail.Code)
	assert.NotContains(t, detail.Message, "render failed")
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(contextWithValue(req, key{}, "v"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
