package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vitop/internal/config"
	"vitop/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .vitop.yaml configuration",
	Long: `Write a starter configuration file in the current directory.

The file documents every setting with its default value; edit it or
delete it at will. vitop runs fine without one.

Examples:
  vitop init
  vitop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
}

func initConfig(force bool) error {
	path := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Could not serialize the default configuration", "")
	}

	content := "# vitop configuration\n" +
		"# rate_ms: refresh interval in milliseconds (minimum 250)\n" +
		"# temperature_unit: celsius, fahrenheit, or kelvin\n" +
		"# show_average_cpu: add an aggregate AVG line to the CPU panel\n" +
		string(data)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Could not write %s", path),
			"Check directory permissions")
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
