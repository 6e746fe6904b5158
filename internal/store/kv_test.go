package store

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisKV(t *testing.T) (*miniredis.Miniredis, *RedisKV) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisKV(client)
}

func TestRedisKV_GetSet(t *testing.T) {
	_, kv := setupRedisKV(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, "xspoc:feature:enable_influx")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "xspoc:feature:enable_influx", "true", 0))

	v, err := kv.Get(ctx, "xspoc:feature:enable_influx")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestRedisKV_TTL(t *testing.T) {
	mr, kv := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_Delete(t *testing.T) {
	_, kv := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_ScanKeys(t *testing.T) {
	mr, kv := setupRedisKV(t)
	ctx := context.Background()

	mr.Set("xspoc:feature:a", "1")
	mr.Set("xspoc:feature:b", "0")
	mr.Set("other:c", "1")

	keys, err := kv.ScanKeys(ctx, "xspoc:feature:*")
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"xspoc:feature:a", "xspoc:feature:b"}, keys)
}

func TestRedisKV_ServerDown(t *testing.T) {
	mr, kv := setupRedisKV(t)
	mr.Close()

	_, err := kv.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
