package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestPostJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "v", r.Header.Get("X-Test"))

			var got map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, map[string]string{"a": "b"}, got)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"1"}`))
		}))
		defer srv.Close()

		res, err := PostJSON(context.Background(), srv.Client(), "test", srv.URL, http.Header{"X-Test": {"v"}}, map[string]string{"a": "b"})
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.JSONEq(t, `{"id":"1"}`, string(res.Body))
	})

	t.Run("non-2xx is a result, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		res, err := PostJSON(context.Background(), srv.Client(), "test", srv.URL, nil, struct{}{})
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
		assert.Contains(t, string(res.Body), "quota exceeded")
	})

	t.Run("transport failure", func(t *testing.T) {
		failing := doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := PostJSON(context.Background(), failing, "test", "http://example.invalid", nil, struct{}{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
		assert.Equal(t, apperrors.UpstreamUnavailable, apperrors.KindOf(err))
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		called := false
		doer := doerFunc(func(*http.Request) (*http.Response, error) {
			called = true
			return nil, nil
		})

		_, err := PostJSON(context.Background(), doer, "test", "http://example.invalid", nil, make(chan int))
		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, apperrors.Unknown, apperrors.KindOf(err))
	})
}
