// Package cli wires the command surface: flag parsing, config loading,
// and assembly of the collector, terminal, and event-coordination core.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vitop/internal/config"
)

// Root command flags.
var (
	rateFlag       int64
	celsiusFlag    bool
	fahrenheitFlag bool
	kelvinFlag     bool
	avgCPUFlag     bool
	configFlag     string
)

// rootCmd starts the monitor when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "vitop",
	Short: "Live system monitor for the terminal",
	Long: `vitop keeps a continuously redrawn dashboard of host metrics in your
terminal: per-core CPU, memory, swap, network throughput, disks,
temperature sensors, and a sortable process table.

Keys:
  q / Esc / Ctrl-C   quit
  j / k / arrows     move the process selection (mouse wheel works too)
  c / m / p / n      sort by cpu, memory, pid, or name; press again to
                     flip the direction

Examples:
  vitop
  vitop --rate 500
  vitop -f -a`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runMonitor(cfg)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int64VarP(&rateFlag, "rate", "r", config.DefaultRateMs,
		fmt.Sprintf("refresh rate in milliseconds, minimum %d", config.MinRateMs))
	rootCmd.Flags().BoolVarP(&celsiusFlag, "celsius", "c", false,
		"show temperatures in Celsius (default)")
	rootCmd.Flags().BoolVarP(&fahrenheitFlag, "fahrenheit", "f", false,
		"show temperatures in Fahrenheit")
	rootCmd.Flags().BoolVarP(&kelvinFlag, "kelvin", "k", false,
		"show temperatures in Kelvin")
	rootCmd.Flags().BoolVarP(&avgCPUFlag, "avgcpu", "a", false,
		"show the average CPU usage as an extra line")
	rootCmd.Flags().StringVar(&configFlag, "config", "",
		"path to a config file (default ./.vitop.yaml, then ~/.config/vitop/config.yaml)")

	rootCmd.MarkFlagsMutuallyExclusive("celsius", "fahrenheit", "kelvin")
}

// resolveConfig layers explicit flags over the config file and
// environment, then validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cfg, cmd.Flags().Changed("rate"), cmd.Flags().Changed("avgcpu"))

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides layers explicitly-set flags over file and
// environment values. The boolean unit flags only take effect when one
// of them is raised, so the file's unit survives a plain invocation.
func applyFlagOverrides(cfg *config.Config, rateChanged, avgChanged bool) {
	if rateChanged {
		cfg.RateMs = rateFlag
	}
	if avgChanged {
		cfg.ShowAverageCPU = avgCPUFlag
	}
	switch {
	case fahrenheitFlag:
		cfg.TemperatureUnit = config.UnitFahrenheit
	case kelvinFlag:
		cfg.TemperatureUnit = config.UnitKelvin
	case celsiusFlag:
		cfg.TemperatureUnit = config.UnitCelsius
	}
}
