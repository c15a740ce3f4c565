package redis

import (
	"context"
	stderrors "errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger *logger.Logger
	config *Config
	rdb    redis.UniversalClient
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger *logger.Logger, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func configError(msg string) error {
	return errors.NewErrorDetails(msg, string(errors.RedisConfigError), "connect")
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return configError("Redis config is nil")
	}
	if err := c.config.Validate(); err != nil {
		return err
	}

	var rdb redis.UniversalClient
	switch c.config.Mode {
	case Standalone:
		rdb = redis.NewClient(&redis.Options{
			Addr:            c.config.Addrs[0],
			Username:        c.config.Username,
			Password:        c.config.Password,
			DB:              c.config.DB,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	case Cluster:
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           c.config.Addrs,
			Username:        c.config.Username,
			Password:        c.config.Password,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return errors.WrapDetails(err, "Failed to connect to Redis", string(errors.RedisConnectionError), "connect")
	}

	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	c.rdb = rdb
	return nil
}

// Reconnect retries Connect with exponential backoff and jitter.
// It returns false when retries are exhausted or ctx is done.
func (c *client) Reconnect(ctx context.Context) bool {
	baseDelay := c.config.MinRetryBackoff
	maxDelay := c.config.MaxRetryBackoff

	for i := range c.config.ReconnectMaxRetries {
		backoff := min(baseDelay*time.Duration(math.Pow(2, float64(i))), maxDelay)
		totalDelay := backoff + time.Duration(rand.IntN(1000))*time.Millisecond

		c.logger.Info("Reconnecting to Redis",
			logger.Field{Key: "attempt", Value: i + 1},
			logger.Field{Key: "delay", Value: totalDelay},
		)

		select {
		case <-ctx.Done():
			c.logger.Info("Reconnect cancelled", logger.Field{Key: "reason", Value: ctx.Err()})
			return false
		case <-time.After(totalDelay):
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Connect(connectCtx)
			cancel()
			if err == nil {
				c.logger.Info("Reconnected to Redis successfully", logger.Field{Key: "attempt", Value: i + 1})
				return true
			}
			c.logger.Error(errors.TracerFromError(err), logger.Field{Key: "attempt", Value: i + 1})
		}
	}

	return false
}

func (c *client) Disconnect(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Close(); err != nil {
		return errors.WrapDetails(err, "Failed to close Redis client", string(errors.RedisDisconnectionError), "disconnect")
	}
	return nil
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.WrapDetails(err, "Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

// HGet returns an empty string and no error when the field does not exist.
func (c *client) HGet(ctx context.Context, key, field string) (string, error) {
	val, err := c.rdb.HGet(ctx, key, field).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.WrapDetails(err, "Failed to get field from hash in Redis", string(errors.RedisHGetError), "hget")
	}
	return val, nil
}

func (c *client) HSet(ctx context.Context, key string, values map[string]any) (int64, error) {
	affected, err := c.rdb.HSet(ctx, key, values).Result()
	if err != nil {
		return 0, errors.WrapDetails(err, "Failed to set fields in hash in Redis", string(errors.RedisHSetError), "hset")
	}
	return affected, nil
}

func (c *client) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := c.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapDetails(err, "Failed to read set members from Redis", string(errors.RedisSMembersError), "smembers")
	}
	return members, nil
}

func (c *client) SAdd(ctx context.Context, key string, members ...any) (int64, error) {
	added, err := c.rdb.SAdd(ctx, key, members...).Result()
	if err != nil {
		return 0, errors.WrapDetails(err, "Failed to add set members in Redis", string(errors.RedisSAddError), "sadd")
	}
	return added, nil
}

// Subscribe waits for the subscription confirmation before returning the PubSub.
func (c *client) Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error) {
	pubSub := c.rdb.Subscribe(ctx, channels...)

	if _, err := pubSub.Receive(ctx); err != nil {
		_ = pubSub.Close()
		return nil, errors.WrapDetails(err, "Failed to subscribe to channels in Redis", string(errors.RedisSubscribeError), "subscribe")
	}
	return pubSub, nil
}

// Publish returns the number of receivers. Zero receivers is not an error.
func (c *client) Publish(ctx context.Context, channel string, message any) (int64, error) {
	published, err := c.rdb.Publish(ctx, channel, message).Result()
	if err != nil {
		return 0, errors.WrapDetails(err, "Failed to publish message to Redis", string(errors.RedisPublishError), "publish")
	}
	return published, nil
}

// XRead returns nil streams and no error when the read timed out without entries.
func (c *client) XRead(ctx context.Context, args *redis.XReadArgs) ([]redis.XStream, error) {
	streams, err := c.rdb.XRead(ctx, args).Result()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapDetails(err, "Failed to read from stream", string(errors.RedisXReadError), "xread")
	}
	return streams, nil
}

// XAdd appends an entry and returns the id Redis assigned to it.
func (c *client) XAdd(ctx context.Context, args *redis.XAddArgs) (string, error) {
	id, err := c.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", errors.WrapDetails(err, "Failed to append to stream", string(errors.RedisXAddError), "xadd")
	}
	return id, nil
}
