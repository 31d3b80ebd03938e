package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_Key(t *testing.T) {
	s := NewIdempotencyStore(nil)
	assert.Equal(t, "idem:order:u1:abc", s.key("u1:abc"))
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.Error(t, err, "expected ping failure")
}

func TestIdempotencyStore_ReserveSurfacesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	_, reserved, err := NewIdempotencyStore(client).Reserve(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, reserved)
}
