package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"vitop/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".vitop.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/vitop"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path. Environment variables with a
// VITOP_ prefix (VITOP_RATE_MS, VITOP_TEMPERATURE_UNIT, VITOP_SHOW_AVERAGE_CPU)
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'vitop init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .vitop.yaml in current directory
// 3. ~/.config/vitop/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if no
// file exists. Environment overrides still apply in the no-file case.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		v := viper.New()
		applyDefaults(v)
		return parseConfig(v)
	}

	return Load(path)
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("rate_ms", DefaultRateMs)
	v.SetDefault("temperature_unit", UnitCelsius)
	v.SetDefault("show_average_cpu", false)

	v.SetEnvPrefix("VITOP")
	v.AutomaticEnv()
}

func parseConfig(v *viper.Viper) (*Config, error) {
	// Typed getters rather than Unmarshal so environment overrides
	// (always strings) coerce cleanly to their field types.
	return &Config{
		RateMs:          v.GetInt64("rate_ms"),
		TemperatureUnit: v.GetString("temperature_unit"),
		ShowAverageCPU:  v.GetBool("show_average_cpu"),
	}, nil
}
