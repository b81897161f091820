package redis

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failExpireOnce fails the first pipeline that carries an EXPIRE.
type failExpireOnce struct {
	failed bool
}

func (h *failExpireOnce) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *failExpireOnce) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if !h.failed && cmd.Name() == "expire" {
			h.failed = true
			return errors.New("expire: connection reset")
		}
		return next(ctx, cmd)
	}
}

func (h *failExpireOnce) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			if !h.failed && cmd.Name() == "expire" {
				h.failed = true
				return errors.New("expire: connection reset")
			}
		}
		return next(ctx, cmds)
	}
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr(), "", "")
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNoopLimiter(t *testing.T) {
	ok, err := NoopLimiter{}.Allow(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowLimiter_ResetsAfterWindow(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()
	limiter := NewWindowLimiter(client, "forms", 2, time.Hour)

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	// the window is fixed from the first hit, later hits do not extend it
	assert.Equal(t, time.Hour, mr.TTL("forms:10.0.0.1"))

	mr.FastForward(time.Hour + time.Second)
	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowLimiter_LostExpiryDoesNotBlockForever(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()
	client.AddHook(&failExpireOnce{})
	limiter := NewWindowLimiter(client, "forms", 2, time.Hour)

	_, err := limiter.Allow(ctx, "10.0.0.1")
	require.Error(t, err)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
	}
	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, mr.TTL("forms:10.0.0.1"), time.Duration(0))

	mr.FastForward(48 * time.Hour)
	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowLimiter_HealsCounterWithoutTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()
	limiter := NewWindowLimiter(client, "forms", 2, time.Hour)

	// a counter left behind with no expiry
	require.NoError(t, mr.Set("forms:10.0.0.1", "7"))

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Hour, mr.TTL("forms:10.0.0.1"))

	mr.FastForward(time.Hour + time.Second)
	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowLimiter_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set, skipping redis limiter test")
	}

	client := NewClient(addr, "", "")
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}

	limiter := NewWindowLimiter(client, "test-forms-"+uuid.NewString(), 2, time.Minute)
	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
}
