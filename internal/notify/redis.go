package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"medislot/internal/domain"
)

// ChannelPublisher is satisfied by *redis.Client.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher fans events out over Redis Pub/Sub. Subscribers that are offline miss
// the event.
type RedisPublisher struct {
	client  ChannelPublisher
	channel string
}

func NewRedisPublisher(client ChannelPublisher, channel string) (*RedisPublisher, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return nil, errors.New("redis channel not configured")
	}
	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) Name() string { return "redis" }

func (p *RedisPublisher) Publish(ctx context.Context, ev domain.BookedEvent) error {
	payload, err := encodeEvent(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

// Close is a no-op; the Redis client is shared and closed by its owner.
func (p *RedisPublisher) Close() error { return nil }
