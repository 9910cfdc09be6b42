package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(RedisConfig{Port: 6379}); !errors.Is(err, ErrHostRequired) {
		t.Errorf("New() error = %v, want ErrHostRequired", err)
	}
	if _, err := New(RedisConfig{Host: "localhost", Port: 70000}); !errors.Is(err, ErrInvalidPort) {
		t.Errorf("New() error = %v, want ErrInvalidPort", err)
	}
}

func TestRedisRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	r, err := New(RedisConfig{Host: mr.Host(), Port: port})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()
	ctx := context.Background()

	if err := r.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if _, err := r.Get(ctx, "missing"); !IsNil(err) {
		t.Errorf("Get(missing) error = %v, want nil-reply", err)
	}
	if err := r.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, err := r.Get(ctx, "k"); err != nil || v != "v" {
		t.Errorf("Get() = %q, %v", v, err)
	}
	if ok, _ := r.Exists(ctx, "k"); !ok {
		t.Errorf("Exists() = false")
	}
	if ttl, _ := r.TTL(ctx, "k"); ttl <= 0 {
		t.Errorf("TTL() = %v, want > 0", ttl)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ok, _ := r.Exists(ctx, "k"); ok {
		t.Errorf("Exists() after delete = true")
	}
}

func TestSetIfUnchanged(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	r, err := New(RedisConfig{Host: mr.Host(), Port: port})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()
	ctx := context.Background()

	if ok, err := r.SetIfUnchanged(ctx, "ver", "", "k", "v1", time.Minute); err != nil || !ok {
		t.Fatalf("SetIfUnchanged(missing guard) = %v, %v, want true", ok, err)
	}

	n, err := r.Incr(ctx, "ver", time.Minute)
	if err != nil || n != 1 {
		t.Fatalf("Incr() = %d, %v, want 1", n, err)
	}
	if ttl, _ := r.TTL(ctx, "ver"); ttl <= 0 {
		t.Errorf("TTL(ver) = %v, want > 0", ttl)
	}

	if ok, err := r.SetIfUnchanged(ctx, "ver", "", "k", "stale", time.Minute); err != nil || ok {
		t.Errorf("SetIfUnchanged(moved guard) = %v, %v, want false", ok, err)
	}
	if v, _ := r.Get(ctx, "k"); v != "v1" {
		t.Errorf("Get() after refused set = %q, want v1", v)
	}

	if ok, err := r.SetIfUnchanged(ctx, "ver", "1", "k", "v2", time.Minute); err != nil || !ok {
		t.Errorf("SetIfUnchanged(current guard) = %v, %v, want true", ok, err)
	}
	if v, _ := r.Get(ctx, "k"); v != "v2" {
		t.Errorf("Get() = %q, want v2", v)
	}
}
