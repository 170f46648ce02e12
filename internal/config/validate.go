package config

import (
	"fmt"

	"vitop/internal/errors"
)

// validUnits are the accepted temperature unit names.
var validUnits = map[string]bool{
	UnitCelsius:    true,
	UnitFahrenheit: true,
	UnitKelvin:     true,
}

// Validate checks the config for errors and returns structured error messages.
// It must be called before any sampling or rendering starts: a bad refresh
// rate is fatal at startup, never discovered mid-run.
func Validate(cfg *Config) error {
	if cfg.RateMs < MinRateMs {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh rate %dms is below the %dms minimum", cfg.RateMs, MinRateMs),
			"Set your refresh rate to at least 250 milliseconds")
	}

	if cfg.RateMs > MaxRateMs {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh rate %dms is too large to represent", cfg.RateMs),
			fmt.Sprintf("Set your refresh rate below %d milliseconds", MaxRateMs))
	}

	if cfg.TemperatureUnit != "" && !validUnits[cfg.TemperatureUnit] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown temperature unit %q", cfg.TemperatureUnit),
			"Use celsius, fahrenheit, or kelvin")
	}

	return nil
}
