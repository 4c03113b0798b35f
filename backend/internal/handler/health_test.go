package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/stretchr/testify/assert"
)

// --- Mock for HealthChecker ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func TestHealth(t *testing.T) {
	handler := &Handler{cfg: &config.Config{}, health: &MockHealthChecker{}}

	rr := httptest.NewRecorder()
	handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("content readable", func(t *testing.T) {
		handler := &Handler{cfg: &config.Config{}, health: &MockHealthChecker{}}

		rr := httptest.NewRecorder()
		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("content unavailable", func(t *testing.T) {
		handler := &Handler{
			cfg: &config.Config{},
			health: &MockHealthChecker{PingFunc: func(ctx context.Context) error {
				return errors.New("open content: no such file or directory")
			}},
		}

		rr := httptest.NewRecorder()
		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "content unavailable", rr.Body.String())
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		var hasDeadline bool
		handler := &Handler{
			cfg: &config.Config{},
			health: &MockHealthChecker{PingFunc: func(ctx context.Context) error {
				deadline, ok := ctx.Deadline()
				hasDeadline = ok && time.Until(deadline) <= 2*time.Second
				return nil
			}},
		}

		handler.Ready(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.True(t, hasDeadline)
	})
}
