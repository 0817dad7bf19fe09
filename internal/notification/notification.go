// Package notification tells influencers about events on their account.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KindAvatarReady is sent when an influencer's avatar has been created.
	KindAvatarReady = "avatar_ready"
	// KindNewChat is sent when a customer chats with an influencer's avatar.
	KindNewChat = "new_chat"

	channelPrefix = "avatarcommerce:notifications:"
)

// Message describes a notification payload. Destination is the influencer id.
type Message struct {
	Kind        string    `json:"kind"`
	Destination string    `json:"destination"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// Channel is the pub/sub channel carrying destination's notifications.
func Channel(destination string) string {
	return channelPrefix + destination
}

// LoggerNotifier writes notifications to the logger. Used without Redis.
type LoggerNotifier struct {
	logger *slog.Logger
}

func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "destination", message.Destination, "body", message.Body)
	return nil
}

// RedisNotifier publishes JSON messages on the destination's channel.
type RedisNotifier struct {
	cache *redis.Client
}

func NewRedisNotifier(cache *redis.Client) *RedisNotifier {
	return &RedisNotifier{cache: cache}
}

func (n *RedisNotifier) Send(ctx context.Context, message Message) error {
	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}
	if err := n.cache.Publish(ctx, Channel(message.Destination), payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
