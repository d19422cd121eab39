package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	eventsKey     = "events:live"
	generationKey = "events:live:generation"
)

type eventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventCache(client *redis.Client, ttl time.Duration) database.EventCache {
	return &eventCache{
		client: client,
		ttl:    ttl,
	}
}

// GetEvents reports false on a cache miss.
func (c *eventCache) GetEvents(ctx context.Context) ([]*entity.Event, bool, error) {
	data, err := c.client.Get(ctx, eventsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached events: %w", err)
	}

	var events []*entity.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached events: %w", err)
	}

	return events, true, nil
}

// Generation returns the invalidation counter, 0 before the first Invalidate.
func (c *eventCache) Generation(ctx context.Context) (int64, error) {
	generation, err := readGeneration(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return generation, nil
}

// SetEvents stores events only while the generation still equals generation.
// A list loaded before an Invalidate is dropped.
func (c *eventCache) SetEvents(ctx context.Context, events []*entity.Event, generation int64) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, eventsKey, data, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	// the generation moved between the check and EXEC
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache events: %w", err)
	}
	return nil
}

func (c *eventCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, eventsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached events: %w", err)
	}
	return nil
}

func readGeneration(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	generation, err := cmd.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}
