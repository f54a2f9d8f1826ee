package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis() *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewRedis(client, time.Minute)
}

func TestRedis_UnreachableServerReturnsErrors(t *testing.T) {
	r := unreachableRedis()
	defer r.Close()
	ctx := context.Background()

	_, ok, err := r.Get(ctx, "k")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis get k")

	err = r.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	assert.Error(t, r.Ping(ctx))
}

func TestMemoizer_UnreachableRedisStillCompares(t *testing.T) {
	r := unreachableRedis()
	defer r.Close()

	next := &countingComparer{}
	result, err := NewMemoizer(next, r, nil).Compare(context.Background(), testConfiguration(12))
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int32(1), next.calls.Load())
}
