package service

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisLoginRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisLoginRateLimiter
		if !l.Allow("user@example.com") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisLoginRateLimiter{client: &mockRedisEvaler{result: 1}, ttlSeconds: 600, max: 3}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("under limit allowed", func(t *testing.T) {
		evaler := &mockRedisEvaler{result: 3}
		l := &redisLoginRateLimiter{client: evaler, ttlSeconds: 600, max: 3}
		if !l.Allow("User@Example.com") {
			t.Fatalf("expected allow at the limit")
		}
		if len(evaler.lastKeys) != 1 || evaler.lastKeys[0] != "devconnect:login:user@example.com" {
			t.Fatalf("unexpected redis key: %v", evaler.lastKeys)
		}
		if len(evaler.lastArgs) != 1 || evaler.lastArgs[0] != 600 {
			t.Fatalf("unexpected window argument: %v", evaler.lastArgs)
		}
	})

	t.Run("over limit denied", func(t *testing.T) {
		l := &redisLoginRateLimiter{client: &mockRedisEvaler{result: 4}, ttlSeconds: 600, max: 3}
		if l.Allow("user@example.com") {
			t.Fatalf("expected deny over the limit")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisLoginRateLimiter{client: &mockRedisEvaler{err: errors.New("boom")}, ttlSeconds: 600, max: 3}
		if !l.Allow("user@example.com") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}
