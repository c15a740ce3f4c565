package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "marketfeed", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.Feed.TickInterval)
	assert.Equal(t, int64(1000), cfg.Feed.ReadCount)
	assert.Equal(t, 10*time.Millisecond, cfg.Feed.ReadBlock)
	assert.Equal(t, 20, cfg.Feed.Depth)
	assert.Equal(t, 2*time.Second, cfg.Feed.SinkTimeout)
	assert.Equal(t, "snapshot", cfg.Feed.SnapshotKey)
	assert.Equal(t, "%s:updates", cfg.Feed.DepthChannel)
	assert.Equal(t, []string{"1m", "5m"}, cfg.Candle.EnabledIntervals)
	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Addrs)
	assert.False(t, cfg.QuestDB.Enabled)
	assert.Equal(t, 8812, cfg.QuestDB.Port)
	assert.False(t, cfg.TradeKafka.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FEED_DEPTH", "50")
	t.Setenv("FEED_TIMEZONE", "UTC")
	t.Setenv("REDIS_ADDRS", "a:1,b:2")
	t.Setenv("REDIS_MODE", "cluster")
	t.Setenv("QUESTDB_ENABLED", "true")
	t.Setenv("QUESTDB_HOST", "qdb")
	t.Setenv("TRADE_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Feed.Depth)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.Redis.Addrs)
	assert.True(t, cfg.QuestDB.Enabled)
	assert.Equal(t, "qdb", cfg.QuestDB.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.TradeKafka.Brokers)

	loc, err := cfg.Feed.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero read block", key: "FEED_READ_BLOCK", val: "0s"},
		{name: "zero depth", key: "FEED_DEPTH", val: "0"},
		{name: "zero sink timeout", key: "FEED_SINK_TIMEOUT", val: "0s"},
		{name: "unknown timezone", key: "FEED_TIMEZONE", val: "Mars/Olympus"},
		{name: "unknown interval", key: "CANDLE_ENABLED_INTERVALS", val: "1m,7m"},
		{name: "bad redis mode", key: "REDIS_MODE", val: "sentinel"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestMustLoad(t *testing.T) {
	t.Setenv("NAME", "feed-test")
	cfg := MustLoad[AppConfig]()
	assert.Equal(t, "feed-test", cfg.Name)
	assert.Equal(t, "info", cfg.LogLevel)
}
