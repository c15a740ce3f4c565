package interval

import (
	"fmt"
)

// Config holds candle interval configuration.
type Config struct {
	EnabledIntervals []string `env:"ENABLED_INTERVALS" envSeparator:"," envDefault:"1m,5m"`
}

// GetEnabledIntervals resolves the configured names.
func (c Config) GetEnabledIntervals() ([]Interval, error) {
	enabled := make([]Interval, 0, len(c.EnabledIntervals))

	for _, name := range c.EnabledIntervals {
		interval, err := GetInterval(name)
		if err != nil {
			return nil, fmt.Errorf("invalid interval in config: %s", name)
		}
		enabled = append(enabled, interval)
	}

	return enabled, nil
}
