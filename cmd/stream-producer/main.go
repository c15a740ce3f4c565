package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

func main() {
	var (
		product     = flag.String("product", "BTC-USD", "Product id to generate events for")
		delay       = flag.Duration("delay", 100*time.Millisecond, "Delay between events")
		count       = flag.Int("count", 1000, "Number of events to generate")
		basePrice   = flag.Int64("base-price", 39455, "Base price in ticks")
		priceSpread = flag.Int64("price-spread", 200, "Price spread range in ticks")
		seed        = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	)
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.MustLoad[config.Config]()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := redis.NewClient(log, &cfg.Redis)
	if err := client.Connect(ctx); err != nil {
		log.Error(err, logger.NewField("action", "connect_redis"))
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// Register the product so running feeds pick it up.
	if _, err := client.SAdd(ctx, cfg.Feed.ProductsKey, *product); err != nil {
		log.Error(err, logger.NewField("action", "register_product"))
		return
	}
	if _, err := client.Publish(ctx, cfg.Feed.ProductsChannel, *product); err != nil {
		log.Error(err, logger.NewField("action", "announce_product"))
	}

	gen := newGenerator(*seed, *product, *basePrice, *priceSpread)
	sent := map[string]int{}

	log.Info("Sending events",
		logger.NewField("product", *product),
		logger.NewField("count", *count),
		logger.NewField("delay", *delay),
	)

	for i := range *count {
		event := gen.Next()
		values := make(map[string]any, len(event.Fields))
		for k, v := range event.Fields {
			values[k] = v
		}

		id, err := client.XAdd(ctx, &v9.XAddArgs{Stream: event.Stream, Values: values})
		if err != nil {
			log.Error(err, logger.NewField("event", i+1))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		sent[event.Stream]++

		// Log progress every 100 events or for the last event
		if (i+1)%100 == 0 || i == *count-1 {
			log.Info("Sent event",
				logger.NewField("n", i+1),
				logger.NewField("stream", event.Stream),
				logger.NewField("id", id),
				logger.NewField("status", event.Fields["status"]),
			)
		}

		if i < *count-1 {
			select {
			case <-ctx.Done():
			case <-time.After(*delay):
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Info("Done", logger.NewField("sent", sent))
}
