package baseline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/qa-harness/reqres-contract-tests/framework/opt"
)

const (
	redisStatusField = "status"
	redisKeysField   = "keys"
)

// RedisStore keeps each shape in a hash with "status" and "keys" fields.
type RedisStore struct {
	redis *redis.Client
}

func OpenRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	return &RedisStore{redis: rdb}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (opt.Maybe[Shape], error) {
	fields, err := r.redis.HGetAll(ctx, prefixedKey(key)).Result()
	if err != nil || len(fields) == 0 {
		return opt.None[Shape](), err
	}
	status, err := strconv.Atoi(fields[redisStatusField])
	if err != nil {
		return opt.None[Shape](), fmt.Errorf("malformed baseline status %q", fields[redisStatusField])
	}
	var keys []string
	if err := json.Unmarshal([]byte(fields[redisKeysField]), &keys); err != nil {
		return opt.None[Shape](), fmt.Errorf("malformed baseline keys: %w", err)
	}
	return opt.Some(Shape{Status: status, Keys: keys}), nil
}

func (r *RedisStore) Put(ctx context.Context, key string, shape Shape) error {
	keys, _ := json.Marshal(shape.Keys)
	_, err := r.redis.HSet(ctx, prefixedKey(key), map[string]string{
		redisStatusField: strconv.Itoa(shape.Status),
		redisKeysField:   string(keys),
	}).Result()
	return err
}

func (r *RedisStore) Location() string {
	return fmt.Sprintf("redis://%s", r.redis.Options().Addr)
}

func (r *RedisStore) Close() error {
	return r.redis.Close()
}
