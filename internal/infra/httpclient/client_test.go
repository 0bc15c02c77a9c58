package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicteams/server/internal/infra/config"
)

func TestNew(t *testing.T) {
	c := New(config.HTTPClientConfig{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		ResponseTimeout:     4 * time.Second,
	})

	assert.Equal(t, 4*time.Second, c.Timeout)

	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 10, transport.MaxIdleConns)
	assert.Equal(t, 2, transport.MaxIdleConnsPerHost)
	assert.Equal(t, 5*time.Second, transport.TLSHandshakeTimeout)
}
