package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/authgate/pkg/cookie"
)

func TestManagerSet(t *testing.T) {
	t.Parallel()

	t.Run("secure defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		m.Set(w, "session", "value")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)

		c := cookies[0]
		assert.Equal(t, "session", c.Name)
		assert.Equal(t, "value", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)
	})

	t.Run("manager defaults applied to every cookie", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(
			cookie.WithDomain(".example.com"),
			cookie.WithSecure(true),
			cookie.WithMaxAge(3600),
		)
		w := httptest.NewRecorder()
		m.Set(w, "access_token", "a")
		m.Set(w, "refresh_token", "b")
		m.Set(w, "id_token", "c")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 3)
		for _, c := range cookies {
			assert.Equal(t, ".example.com", c.Domain)
			assert.True(t, c.Secure)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, 3600, c.MaxAge)
		}
	})

	t.Run("separate header value per cookie", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		m.Set(w, "a", "1")
		m.Set(w, "b", "2")

		values := w.Result().Header.Values("Set-Cookie")
		assert.Len(t, values, 2)
	})

	t.Run("per-call option overrides default", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithMaxAge(3600))
		w := httptest.NewRecorder()
		m.Set(w, "short", "v", cookie.WithMaxAge(60))
		m.Set(w, "long", "v")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.Equal(t, 3600, cookies[1].MaxAge)
	})
}

func TestManagerGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

	got, err := m.Get(r, "session")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = m.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain(".example.com"))
	w := httptest.NewRecorder()
	m.Delete(w, "access_token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, ".example.com", cookies[0].Domain)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{
		Path:     "/",
		Domain:   ".example.com",
		MaxAge:   1800,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w := httptest.NewRecorder()
	m.Set(w, "session", "v")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, ".example.com", c.Domain)
	assert.Equal(t, 1800, c.MaxAge)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}
