package redis

import (
	"context"

	v9 "github.com/redis/go-redis/v9"
)

// Client defines the interface for a Redis client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	HGet(ctx context.Context, key, field string) (string, error)
	HSet(ctx context.Context, key string, values map[string]any) (int64, error)

	SMembers(ctx context.Context, key string) ([]string, error)
	SAdd(ctx context.Context, key string, members ...any) (int64, error)

	Subscribe(ctx context.Context, channels ...string) (*v9.PubSub, error)
	Publish(ctx context.Context, channel string, message any) (int64, error)

	XRead(ctx context.Context, args *v9.XReadArgs) ([]v9.XStream, error)
	XAdd(ctx context.Context, args *v9.XAddArgs) (string, error)
}
