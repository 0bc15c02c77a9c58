// Package triage is the HTTP client for the external issue classifier.
package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

// ErrClassifierUnavailable covers every way a classification can fail.
var ErrClassifierUnavailable = apperrors.Define(apperrors.ErrUpstreamUnavailable, "classifier_unavailable", "issue classifier unavailable")

// Config holds classifier client configuration.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MaxConcurrent    int64
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type triageRequest struct {
	Description string `json:"description"`
}

type triageResponse struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// Client implements outbound.ClassifierPort against POST {base}/triage.
//
// Calls are bounded three ways: a per-call timeout, a cap on concurrent
// requests, and a circuit breaker that stops calling a failing service for a
// while after FailureThreshold consecutive failures.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	sem      *semaphore.Weighted
	breaker  *gobreaker.CircuitBreaker[*outbound.Classification]
	logger   *zap.Logger
}

// NewClient creates a classifier client.
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 8
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger = logger.Named("triage")

	threshold := cfg.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker[*outbound.Classification](gobreaker.Settings{
		Name:        "triage",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("classifier circuit state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/triage",
		http:     httpClient,
		timeout:  cfg.Timeout,
		sem:      semaphore.NewWeighted(cfg.MaxConcurrent),
		breaker:  breaker,
		logger:   logger,
	}
}

// Classify asks the classifier to label a description.
func (c *Client) Classify(ctx context.Context, description string) (*outbound.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	defer c.sem.Release(1)

	result, err := c.breaker.Execute(func() (*outbound.Classification, error) {
		return c.call(ctx, description)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	return result, nil
}

// State returns the circuit breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

func (c *Client) call(ctx context.Context, description string) (*outbound.Classification, error) {
	body, err := json.Marshal(triageRequest{Description: description})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out triageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classifier response: %w", err)
	}
	if strings.TrimSpace(out.Category) == "" {
		return nil, errors.New("classifier response has no category")
	}

	return &outbound.Classification{
		Category: strings.TrimSpace(out.Category),
		Severity: model.ParseSeverity(out.Priority),
	}, nil
}

// Compile-time check
var _ outbound.ClassifierPort = (*Client)(nil)
