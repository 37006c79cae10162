package locking

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := strings.TrimSpace(os.Getenv("MEDISLOT_TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("MEDISLOT_TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return rdb
}

func TestRedisIntegration_LeaseExcludesAndReleases(t *testing.T) {
	rdb := newTestRedis(t)
	prefix := "medislot:test:" + uuid.NewString() + ":"
	l := NewRedis(rdb, WithKeyPrefix(prefix), WithRetryInterval(5*time.Millisecond))

	ctx := context.Background()
	unlock, err := l.Lock(ctx, "d1")
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(waitCtx, "d1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want %v", err, context.DeadlineExceeded)
	}

	unlock()
	if n, err := rdb.Exists(ctx, prefix+"d1").Result(); err != nil || n != 0 {
		t.Fatalf("lease key still present: n=%d err=%v", n, err)
	}

	unlock, err = l.Lock(ctx, "d1")
	if err != nil {
		t.Fatalf("Lock after release error: %v", err)
	}
	unlock()
}

func TestRedisIntegration_LostLeaseIsNotDeletedByOldHolder(t *testing.T) {
	rdb := newTestRedis(t)
	prefix := "medislot:test:" + uuid.NewString() + ":"
	l := NewRedis(rdb, WithKeyPrefix(prefix), WithRetryInterval(5*time.Millisecond))

	ctx := context.Background()
	stale, err := l.Lock(ctx, "d1")
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}

	// Simulate the lease running out under a stalled holder.
	if err := rdb.Del(ctx, prefix+"d1").Err(); err != nil {
		t.Fatalf("Del error: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	fresh, err := l.Lock(waitCtx, "d1")
	if err != nil {
		t.Fatalf("Lock after expiry error: %v", err)
	}
	defer fresh()

	stale()
	if n, err := rdb.Exists(ctx, prefix+"d1").Result(); err != nil || n != 1 {
		t.Fatalf("stale release removed the new lease: n=%d err=%v", n, err)
	}
}

func TestRedisIntegration_LeaseIsRenewedWhileHeld(t *testing.T) {
	rdb := newTestRedis(t)
	prefix := "medislot:test:" + uuid.NewString() + ":"
	const ttl = 150 * time.Millisecond
	l := NewRedis(rdb, WithKeyPrefix(prefix), WithLeaseTTL(ttl), WithRetryInterval(5*time.Millisecond))

	ctx := context.Background()
	unlock, err := l.Lock(ctx, "d1")
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}

	// Wait well past the TTL; a contender must still be kept out.
	waitCtx, cancel := context.WithTimeout(ctx, 4*ttl)
	defer cancel()
	if _, err := l.Lock(waitCtx, "d1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("contender err = %v, want %v", err, context.DeadlineExceeded)
	}
	if pttl, err := rdb.PTTL(ctx, prefix+"d1").Result(); err != nil || pttl <= 0 {
		t.Fatalf("lease ttl = %v err = %v, want a live lease", pttl, err)
	}

	unlock()
	if n, err := rdb.Exists(ctx, prefix+"d1").Result(); err != nil || n != 0 {
		t.Fatalf("lease key still present after release: n=%d err=%v", n, err)
	}
}
