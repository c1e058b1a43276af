package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/authgate/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, inbound string) (ctxID, headerID string) {
		t.Helper()

		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = requestid.FromContext(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if inbound != "" {
			r.Header.Set(requestid.Header, inbound)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		return ctxID, w.Result().Header.Get(requestid.Header)
	}

	t.Run("generates uuid when header absent", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := run(t, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)

		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	})

	t.Run("reuses valid inbound id", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := run(t, "client-id_42")
		assert.Equal(t, "client-id_42", ctxID)
		assert.Equal(t, "client-id_42", headerID)
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()

		ctxID, _ := run(t, "bad id with spaces")
		assert.NotEqual(t, "bad id with spaces", ctxID)

		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil))

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LogExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
