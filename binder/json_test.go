package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/authgate/binder"
)

type payload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	newRequest := func(body, contentType string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{"email":"user@example.com","code":"123456"}`, "application/json"), &v)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", v.Email)
		assert.Equal(t, "123456", v.Code)
	})

	t.Run("content type with charset parameter", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{"email":"a@b.co"}`, "application/json; charset=utf-8"), &v)
		assert.NoError(t, err)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{}`, ""), &v)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{}`, "text/plain"), &v)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{"email":`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(``, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{"email":"a@b.co","extra":true}`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()

		var v payload
		err := bind(newRequest(`{"email":"a@b.co"}{"email":"c@d.co"}`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}
