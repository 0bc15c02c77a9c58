package triage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/model"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL + "/"
	return NewClient(cfg, srv.Client(), zap.NewNop())
}

func TestClient_Classify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/triage", r.URL.Path)

			var req triageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "pothole on 5th", req.Description)

			_ = json.NewEncoder(w).Encode(triageResponse{Category: "Road Hazard", Priority: "High"})
		}, Config{})

		got, err := c.Classify(context.Background(), "pothole on 5th")
		require.NoError(t, err)
		assert.Equal(t, "Road Hazard", got.Category)
		assert.Equal(t, model.SeverityHigh, got.Severity)
	})

	t.Run("unknown_priority_is_pending", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(triageResponse{Category: "Vandalism", Priority: "Someday"})
		}, Config{})

		got, err := c.Classify(context.Background(), "graffiti")
		require.NoError(t, err)
		assert.Equal(t, model.SeverityPending, got.Severity)
	})

	t.Run("non_200", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}, Config{})

		_, err := c.Classify(context.Background(), "x")
		assert.ErrorIs(t, err, ErrClassifierUnavailable)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}, Config{Timeout: 50 * time.Millisecond})

		start := time.Now()
		_, err := c.Classify(context.Background(), "x")
		assert.ErrorIs(t, err, ErrClassifierUnavailable)
		assert.Less(t, time.Since(start), 900*time.Millisecond)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := NewClient(Config{BaseURL: url}, nil, zap.NewNop())
		_, err := c.Classify(context.Background(), "x")
		assert.ErrorIs(t, err, ErrClassifierUnavailable)
	})
}

func TestClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, Config{FailureThreshold: 2, OpenTimeout: time.Minute})

	for range 2 {
		_, err := c.Classify(context.Background(), "x")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, c.State())

	_, err := c.Classify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrClassifierUnavailable)
	assert.Equal(t, int32(2), calls.Load(), "open circuit must not reach the service")
}
