package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// txRetries bounds optimistic-lock retries when two updates for the same
// sender race.
const txRetries = 5

// Redis is a Store backed by a Redis instance, for running more than one bot
// replica behind the webhook. Sessions are stored as JSON with the TTL
// enforced by Redis itself; Update uses WATCH for the read-modify-write.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, senderID string) (*Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+senderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

func (r *Redis) Update(ctx context.Context, senderID string, fn func(*Session)) error {
	key := keyPrefix + senderID

	txf := func(tx *redis.Tx) error {
		sess := &Session{SenderID: senderID}
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// fresh session
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(data, sess); err != nil {
				return fmt.Errorf("failed to decode session: %w", err)
			}
		}

		fn(sess)
		sess.LastActivity = time.Now()

		payload, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < txRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("failed to update session %s: too many conflicts", senderID)
}

func (r *Redis) Delete(ctx context.Context, senderID string) error {
	return r.client.Del(ctx, keyPrefix+senderID).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
