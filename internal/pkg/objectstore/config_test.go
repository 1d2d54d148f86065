package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/internal/pkg/env"
)

func TestLoadConfig_RequiresCredentialsWhenEnabled(t *testing.T) {
	prev := env.Env
	t.Cleanup(func() { env.Env = prev })

	env.Env = map[string]string{"S3_ENABLED": "true", "S3_BUCKET_NAME": "images"}
	_, err := LoadConfig()
	assert.Error(t, err)

	env.Env = map[string]string{
		"S3_ENABLED":           "true",
		"S3_ACCESS_KEY_ID":     "key",
		"S3_SECRET_ACCESS_KEY": "secret",
	}
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "images", cfg.BucketName)

	env.Env = map[string]string{}
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsEnabled())
}

func TestObjectURLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"public url", Config{BucketName: "images", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com/covers/1_abc.jpg"},
		{"custom endpoint", Config{BucketName: "images", EndpointURL: "http://minio:9000"}, "http://minio:9000/images/covers/1_abc.jpg"},
		{"aws", Config{BucketName: "images", Region: "eu-central-1"}, "https://images.s3.eu-central-1.amazonaws.com/covers/1_abc.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := tt.cfg.ObjectURL("covers/1_abc.jpg")
			assert.Equal(t, tt.want, url)

			key, ok := tt.cfg.KeyFromURL(url + "?v=2")
			assert.True(t, ok)
			assert.Equal(t, "covers/1_abc.jpg", key)
		})
	}
}

func TestKeyFromURL_Rejects(t *testing.T) {
	cfg := Config{BucketName: "images", PublicURL: "https://cdn.example.com"}

	for _, url := range []string{
		"https://evil.example.com/covers/a.jpg",
		"https://cdn.example.com/",
		"https://cdn.example.com/../secrets",
	} {
		_, ok := cfg.KeyFromURL(url)
		assert.False(t, ok, url)
	}
}
