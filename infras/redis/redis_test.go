package redis_test

import (
	"context"
	"net"
	"testing"

	"galerij/config"
	"galerij/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("disabled cache returns nil client", func(t *testing.T) {
		cfg := &config.Config{}

		assert.Nil(t, redis.New(cfg))
	})

	t.Run("enabled cache connects", func(t *testing.T) {
		mr := miniredis.RunT(t)

		host, port, err := net.SplitHostPort(mr.Addr())
		require.NoError(t, err)

		cfg := &config.Config{}
		cfg.Cache.Enable = true
		cfg.Cache.Redis.Primary.Host = host
		cfg.Cache.Redis.Primary.Port = port

		client := redis.New(cfg)
		require.NotNil(t, client)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, client.Ping(context.Background()).Err())
	})
}
