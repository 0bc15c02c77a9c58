package s3

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageStorageAdapter_IncompleteConfig(t *testing.T) {
	_, err := NewImageStorageAdapter(context.Background(), &Config{Bucket: "images"})
	assert.Error(t, err)

	_, err = NewImageStorageAdapter(context.Background(), nil)
	assert.Error(t, err)
}

func TestImageStorageAdapter_PresignGet(t *testing.T) {
	a, err := NewImageStorageAdapter(context.Background(), &Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "access",
		SecretAccessKey: "secret",
		Bucket:          "images",
	})
	require.NoError(t, err)

	raw, err := a.PresignGet(context.Background(), "/issues/abc/photo.jpg", 10*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/images/issues/abc/photo.jpg", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	_, err = a.PresignGet(context.Background(), "", time.Minute)
	assert.Error(t, err)
}
