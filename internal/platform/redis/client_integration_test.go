//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardregistry/internal/platform/config"
	"wardregistry/pkg/testutil/containers"
)

func TestNewConnectsAndReportsHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	server := containers.StartRedis(t)
	ctx := context.Background()

	c, err := New(ctx, config.Redis{URL: server.URL, PoolSize: 2, DialTimeout: 2 * time.Second})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 2, c.Options().PoolSize)
	assert.NoError(t, c.Health(ctx))

	require.NoError(t, c.Close())
	assert.Error(t, c.Health(ctx))
}
