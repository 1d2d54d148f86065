package cache

import (
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.True(t, IsMiss(fmt.Errorf("read total: %w", redis.Nil)))
	assert.False(t, IsMiss(nil))
	assert.False(t, IsMiss(fmt.Errorf("dial tcp: connection refused")))
}

func TestGetInt64_UnreachableServerIsNotAMiss(t *testing.T) {
	SetClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}))

	_, err := GetInt64("statistics:posts:visible")
	require.Error(t, err)
	assert.False(t, IsMiss(err))
}
