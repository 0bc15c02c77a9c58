package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/civicteams/server/internal/infra/config"
)

// New creates a pooled HTTP client for calls to upstream services.
// Zero-valued settings fall back to conservative defaults.
func New(cfg config.HTTPClientConfig) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   orDefault(cfg.DialTimeout, 5*time.Second),
			KeepAlive: orDefault(cfg.KeepAlive, 30*time.Second),
		}).DialContext,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		IdleConnTimeout:     orDefault(cfg.IdleConnTimeout, 90*time.Second),
		TLSHandshakeTimeout: orDefault(cfg.TLSHandshakeTimeout, 5*time.Second),
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ResponseTimeout,
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
