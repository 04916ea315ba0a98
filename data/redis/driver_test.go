package redis

import (
	"context"
	"testing"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/data/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_Registered(t *testing.T) {
	d, err := data.GetCacheDriver("redis")
	require.NoError(t, err)
	assert.Equal(t, "redis", d.Name())
}

func TestDriver_ConnectPingClose(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	var d driver

	conn, err := d.Connect(ctx, &config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	require.IsType(t, &redis.Client{}, conn)
	require.NoError(t, d.Ping(ctx, conn))
	require.NoError(t, d.Close(conn))
}

func TestDriver_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	var d driver

	_, err := d.Connect(ctx, "localhost:6379")
	assert.ErrorIs(t, err, errConfig)

	_, err = d.Connect(ctx, &config.Redis{})
	assert.Error(t, err)

	assert.ErrorIs(t, d.Ping(ctx, 42), errConn)
	assert.ErrorIs(t, d.Close(nil), errConn)
}

func TestOptions(t *testing.T) {
	opts := Options(&config.Redis{Addr: "cache:6379", Db: 2, Password: "secret"})
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "secret", opts.Password)
}
