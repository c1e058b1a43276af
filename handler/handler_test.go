package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/authgate/binder"
	"github.com/alexkarev/authgate/handler"
)

type echoRequest struct {
	Name string `json:"name"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds request and renders response", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, echoRequest](
			func(ctx handler.Context, req echoRequest) handler.Response {
				return handler.JSON(map[string]string{"hello": req.Name})
			},
		)

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"world"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinder[handler.Context, echoRequest](binder.JSON()))(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("binder failure short-circuits the handler", func(t *testing.T) {
		t.Parallel()

		called := false
		h := handler.HandlerFunc[handler.Context, echoRequest](
			func(ctx handler.Context, req echoRequest) handler.Response {
				called = true
				return handler.JSON(nil)
			},
		)

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinder[handler.Context, echoRequest](binder.JSON()))(w, r)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nil response reported as error", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, echoRequest](
			func(ctx handler.Context, req echoRequest) handler.Response {
				return nil
			},
		)

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		w := httptest.NewRecorder()
		handler.Wrap(h)(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("custom error handler invoked", func(t *testing.T) {
		t.Parallel()

		var capturedErr error
		h := handler.HandlerFunc[handler.Context, echoRequest](
			func(ctx handler.Context, req echoRequest) handler.Response {
				return nil
			},
		)

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		w := httptest.NewRecorder()
		handler.Wrap(h, handler.WithErrorHandler[handler.Context, echoRequest](
			func(ctx handler.Context, err error) {
				capturedErr = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			},
		))(w, r)

		require.Error(t, capturedErr)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("http error carries its status and key", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.JSONError(handler.ErrConflict.WithMessage("account already exists"))
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"code":"conflict","message":"account already exists"}}`, w.Body.String())
	})

	t.Run("unknown error is 500 with verbatim message", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.JSONError(assert.AnError)
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"internal_error"`)
		assert.Contains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("status override", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		resp := handler.JSONError(assert.AnError, handler.WithStatus(http.StatusBadGateway))
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
