package objectstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ManuelReschke/Folio/internal/pkg/env"
)

// Config holds the S3 compatible bucket used for uploaded images
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	PublicURL       string // Base URL under which objects are publicly served
	Enabled         bool
}

// LoadConfig loads the object storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", "images"),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicURL:       env.GetEnv("S3_PUBLIC_URL", ""),
		Enabled:         env.GetBool("S3_ENABLED", false),
	}

	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when S3 is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when S3 is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when S3 is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if uploads to object storage are enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// PublicBase returns the URL prefix of stored objects, without trailing slash.
// Without S3_PUBLIC_URL a path style URL on the endpoint is assumed.
func (c *Config) PublicBase() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	if c.EndpointURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(c.EndpointURL, "/"), c.BucketName)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.BucketName, c.Region)
}

// ObjectURL returns the public URL of key
func (c *Config) ObjectURL(key string) string {
	return c.PublicBase() + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL extracts the object key from a public URL produced by ObjectURL.
// ok is false for URLs outside the bucket.
func (c *Config) KeyFromURL(url string) (string, bool) {
	prefix := c.PublicBase() + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
