package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func (r *redisImpl) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns goredis.Nil (see IsNil) when the key does not exist.
func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisImpl) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisImpl) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// Incr increments key and (re)sets its expiry.
func (r *redisImpl) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *goredis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// SetIfUnchanged sets key only while guardKey still holds guardValue, with
// a missing guard read as "". It reports false when the guard moved.
func (r *redisImpl) SetIfUnchanged(ctx context.Context, guardKey, guardValue, key string, value any, ttl time.Duration) (bool, error) {
	set := false
	err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, guardKey).Result()
		if err != nil && !IsNil(err) {
			return err
		}
		if cur != guardValue {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, value, ttl)
			return nil
		})
		if err == nil {
			set = true
		}
		return err
	}, guardKey)
	if errors.Is(err, goredis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return set, nil
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
