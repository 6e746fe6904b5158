package redis

import (
	"context"
	"testing"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	defer Close(client)

	require.NoError(t, Ping(context.Background(), client))
}
