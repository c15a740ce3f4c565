package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/marketfeed/pkg/interval"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig        `envPrefix:"APP_"`
	Redis      redis.Config     `envPrefix:"REDIS_"`
	Feed       FeedConfig       `envPrefix:"FEED_"`
	Candle     interval.Config  `envPrefix:"CANDLE_"`
	QuestDB    QuestDBConfig    `envPrefix:"QUESTDB_"`
	TradeKafka TradeKafkaConfig `envPrefix:"TRADE_KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"marketfeed"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// FeedConfig drives the per-instrument tick loop.
type FeedConfig struct {
	TickInterval        time.Duration `env:"TICK_INTERVAL" envDefault:"100ms"`
	ReadCount           int64         `env:"READ_COUNT" envDefault:"1000"`
	ReadBlock           time.Duration `env:"READ_BLOCK" envDefault:"10ms"`
	Depth               int           `env:"DEPTH" envDefault:"20"`
	Concurrency         int           `env:"CONCURRENCY" envDefault:"16"`
	TickerBatchInterval time.Duration `env:"TICKER_BATCH_INTERVAL" envDefault:"5s"`
	SinkTimeout         time.Duration `env:"SINK_TIMEOUT" envDefault:"2s"`
	Timezone            string        `env:"TIMEZONE" envDefault:"Local"`

	ProductsKey       string `env:"PRODUCTS_KEY" envDefault:"product"`
	ProductsChannel   string `env:"PRODUCTS_CHANNEL" envDefault:"products:new"`
	SnapshotKey       string `env:"SNAPSHOT_KEY" envDefault:"snapshot"`
	NewStreamSuffix   string `env:"NEW_STREAM_SUFFIX" envDefault:"new"`
	MatchStreamSuffix string `env:"MATCH_STREAM_SUFFIX" envDefault:"matches"`

	DepthChannel       string `env:"DEPTH_CHANNEL" envDefault:"%s:updates"`
	TickerChannel      string `env:"TICKER_CHANNEL" envDefault:"ticker"`
	TickerBatchChannel string `env:"TICKER_BATCH_CHANNEL" envDefault:"ticker_batch"`
	FillsChannel       string `env:"FILLS_CHANNEL" envDefault:"product:%s:user"`
	CandleChannel      string `env:"CANDLE_CHANNEL" envDefault:"%s:candles"`
}

// Location resolves Timezone. An empty value or "Local" means the process zone.
func (f FeedConfig) Location() (*time.Location, error) {
	if f.Timezone == "" || f.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(f.Timezone)
}

// Validate rejects values the engine cannot run with.
func (f FeedConfig) Validate() error {
	switch {
	case f.TickInterval <= 0:
		return fmt.Errorf("invalid feed tick interval: %s", f.TickInterval)
	case f.ReadCount <= 0:
		return fmt.Errorf("invalid feed read count: %d", f.ReadCount)
	case f.ReadBlock <= 0:
		// BLOCK 0 waits forever and would stall the instrument.
		return fmt.Errorf("invalid feed read block: %s", f.ReadBlock)
	case f.Depth <= 0:
		return fmt.Errorf("invalid feed depth: %d", f.Depth)
	case f.Concurrency <= 0:
		return fmt.Errorf("invalid feed concurrency: %d", f.Concurrency)
	case f.TickerBatchInterval <= 0:
		return fmt.Errorf("invalid ticker batch interval: %s", f.TickerBatchInterval)
	case f.SinkTimeout <= 0:
		return fmt.Errorf("invalid feed sink timeout: %s", f.SinkTimeout)
	}
	if _, err := f.Location(); err != nil {
		return fmt.Errorf("invalid feed timezone %q: %w", f.Timezone, err)
	}
	return nil
}

// QuestDBConfig enables the optional tick and candle archive.
type QuestDBConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	questdb.Config
}

// TradeKafkaConfig enables forwarding of executed trades to Kafka.
type TradeKafkaConfig struct {
	Enabled      bool          `env:"ENABLED" envDefault:"false"`
	Brokers      []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic        string        `env:"TOPIC" envDefault:"trades"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Redis.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate redis config: %w", err)
	}
	if err := cfg.Feed.Validate(); err != nil {
		return nil, err
	}
	if _, err := cfg.Candle.GetEnabledIntervals(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad parses T from the environment or panics.
func MustLoad[T any]() *T {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to parse config: %v", err))
	}
	return &cfg
}
