package slotcompliance

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss значения нет в кэше
var ErrCacheMiss = errors.New("cache miss")

// KVStore абстракция KV хранилища (подменяется в тестах)
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr увеличивает счётчик и продлевает его TTL
	Incr(ctx context.Context, key string, ttl time.Duration) error
	// SetIfEqual записывает значение, только если guardKey равен guardValue
	// Отсутствующий guardKey читается как пустая строка
	SetIfEqual(ctx context.Context, guardKey, guardValue, key, value string, ttl time.Duration) (bool, error)
}

// RedisKVStore реализация KVStore на go-redis
type RedisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

func (r *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisKVStore) Incr(ctx context.Context, key string, ttl time.Duration) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// SetIfEqual использует WATCH: если guardKey изменился до EXEC, запись отменяется
func (r *RedisKVStore) SetIfEqual(ctx context.Context, guardKey, guardValue, key, value string, ttl time.Duration) (bool, error) {
	stored := false
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, guardKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != guardValue {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, guardKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored, nil
}

// NopKVStore всегда промахивается, используется при выключенном кэше
type NopKVStore struct{}

func (NopKVStore) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }

func (NopKVStore) Set(context.Context, string, string, time.Duration) error { return nil }

func (NopKVStore) Delete(context.Context, ...string) error { return nil }

func (NopKVStore) Incr(context.Context, string, time.Duration) error { return nil }

func (NopKVStore) SetIfEqual(context.Context, string, string, string, string, time.Duration) (bool, error) {
	return true, nil
}
