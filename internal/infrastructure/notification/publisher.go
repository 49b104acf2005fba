package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel names for outbound notifications. Web clients subscribe to
// these through the gateway that bridges Redis pub/sub to websockets.
const (
	ChannelStock      = "stockflow:notifications:stock"
	ChannelManagement = "stockflow:notifications:management"
)

// Publisher delivers notification messages to subscribers
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) error
}

// RedisPublisher implements Publisher over Redis pub/sub.
// Delivery is fire-and-forget: subscribers that are offline miss the
// message, which is acceptable for UI refresh notifications.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis-backed publisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish marshals the message to JSON and publishes it to the channel
func (p *RedisPublisher) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
