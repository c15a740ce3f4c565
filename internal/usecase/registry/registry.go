package registry

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	productv1 "github.com/muhammadchandra19/marketfeed/internal/domain/product/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Registry holds the active products, discovered from a Redis set and grown from a channel.
type Registry struct {
	mu       sync.RWMutex
	products map[string]struct{}

	redisclient redis.Client
	setKey      string
	channel     string
	logger      *logger.Logger

	minBackoff time.Duration
	maxBackoff time.Duration
}

var _ productv1.Registry = (*Registry)(nil)

// NewRegistry creates an empty Registry reading setKey and listening on channel.
func NewRegistry(redisclient redis.Client, setKey, channel string, log *logger.Logger) *Registry {
	return &Registry{
		products:    make(map[string]struct{}),
		redisclient: redisclient,
		setKey:      setKey,
		channel:     channel,
		logger:      log,
		minBackoff:  100 * time.Millisecond,
		maxBackoff:  10 * time.Second,
	}
}

func (r *Registry) Add(productID string) bool {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; ok {
		return false
	}
	r.products[productID] = struct{}{}
	return true
}

func (r *Registry) Products() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.products))
	for id := range r.products {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Load(ctx context.Context) error {
	members, err := r.redisclient.SMembers(ctx, r.setKey)
	if err != nil {
		return errors.NewTracer("registry_load_error").Wrap(err)
	}

	for _, id := range members {
		r.Add(id)
	}
	r.logger.InfoContext(ctx, "Products loaded",
		logger.NewField("set", r.setKey),
		logger.NewField("count", len(members)),
	)
	return nil
}

// Watch follows the product channel until ctx is done. A failed or dropped
// subscription is retried with exponential backoff, and the set is reloaded
// after every resubscribe to pick up products announced in between.
func (r *Registry) Watch(ctx context.Context) error {
	attempt := 0
	reload := false
	for {
		pubSub, err := r.redisclient.Subscribe(ctx, r.channel)
		if err != nil {
			r.logger.ErrorContext(ctx, errors.NewTracer("registry_watch_error").Wrap(err),
				logger.NewField("channel", r.channel),
				logger.NewField("attempt", attempt+1),
			)
			if !r.wait(ctx, attempt) {
				return nil
			}
			attempt++
			reload = true
			continue
		}

		if reload {
			if err := r.Load(ctx); err != nil {
				r.logger.ErrorContext(ctx, err, logger.NewField("action", "reload_products"))
			}
		}
		attempt = 0

		if r.consume(ctx, pubSub) {
			return nil
		}
		r.logger.Warn("Product subscription closed, resubscribing", logger.NewField("channel", r.channel))
		reload = true
		if !r.wait(ctx, 0) {
			return nil
		}
	}
}

// consume reads announcements until ctx is done (true) or the subscription closes (false).
func (r *Registry) consume(ctx context.Context, pubSub *v9.PubSub) bool {
	defer pubSub.Close()

	messages := pubSub.Channel()
	for {
		select {
		case <-ctx.Done():
			return true
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			if r.Add(msg.Payload) {
				r.logger.Info("Product discovered", logger.NewField("product_id", msg.Payload))
			}
		}
	}
}

// wait sleeps for the backoff of attempt. It reports false when ctx is done first.
func (r *Registry) wait(ctx context.Context, attempt int) bool {
	backoff := r.minBackoff << min(attempt, 16)
	if backoff <= 0 || backoff > r.maxBackoff {
		backoff = r.maxBackoff
	}
	backoff += time.Duration(rand.Int64N(int64(r.minBackoff) + 1))

	timer := time.NewTimer(backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
