package config

import (
	"math"
	"time"
)

// Temperature unit names accepted in config files and flags.
const (
	UnitCelsius    = "celsius"
	UnitFahrenheit = "fahrenheit"
	UnitKelvin     = "kelvin"
)

// Refresh rate bounds in milliseconds. Rates below the minimum burn CPU on
// collection without adding useful resolution; the maximum keeps the value
// representable once converted to a time.Duration (nanoseconds in an int64).
const (
	MinRateMs = 250
	MaxRateMs = math.MaxInt64 / int64(time.Millisecond)
)

// DefaultRateMs is the refresh rate used when none is configured.
const DefaultRateMs = 1000

// Config represents the complete vitop configuration.
// Values are read once at startup and treated as immutable afterwards.
type Config struct {
	// RateMs is the metrics refresh interval in milliseconds.
	RateMs int64 `yaml:"rate_ms" mapstructure:"rate_ms"`

	// TemperatureUnit selects how sensor readings are reported:
	// celsius (default), fahrenheit, or kelvin.
	TemperatureUnit string `yaml:"temperature_unit" mapstructure:"temperature_unit"`

	// ShowAverageCPU adds an aggregate "AVG" pseudo-core to the CPU panel.
	ShowAverageCPU bool `yaml:"show_average_cpu" mapstructure:"show_average_cpu"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		RateMs:          DefaultRateMs,
		TemperatureUnit: UnitCelsius,
		ShowAverageCPU:  false,
	}
}

// Rate returns the refresh interval as a duration.
func (c *Config) Rate() time.Duration {
	return time.Duration(c.RateMs) * time.Millisecond
}
