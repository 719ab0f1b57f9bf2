package jokester

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mistweaverco/jokester/internal/config"
	"github.com/mistweaverco/jokester/internal/lib/files"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Long: `Inspect or create the jokester configuration file.

The config file lives at $JOKESTER_HOME/config.yaml, or in the jokester
directory under your user config dir. Command line flags win over
JOKESTER_API_URL, which wins over the file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := resolveFlags()
		if err != nil {
			return err
		}
		data, err := config.Marshal(flags)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := files.GetConfigFilePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively write a config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := resolveFlags()
		if err != nil {
			return err
		}
		flags, err := askConfigFn(current)
		if err != nil {
			return err
		}
		path, err := files.GetConfigFilePath()
		if err != nil {
			return err
		}
		if err := config.SaveFile(path, flags); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", IconCheck(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func validateTimeout(s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("not a duration, try 5s or 1m")
	}
	if d < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// askConfig prompts for every setting, prefilled with current values.
func askConfig(current config.ConfigFlags) (config.ConfigFlags, error) {
	apiURL := current.APIURL
	color := string(current.Color)
	output := string(current.Output)
	timeout := ""
	if current.Timeout > 0 {
		timeout = current.Timeout.String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Joke API URL").
				Value(&apiURL),
			huh.NewInput().
				Title("Request timeout").
				Description("Leave empty to wait forever").
				Validate(validateTimeout).
				Value(&timeout),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions("auto", "always", "never")...).
				Value(&color),
			huh.NewSelect[string]().
				Title("Output for jokester get").
				Options(huh.NewOptions("rich", "plain", "json")...).
				Value(&output),
		),
	)
	if err := form.Run(); err != nil {
		return current, err
	}

	flags := config.ConfigFlags{
		APIURL: apiURL,
		Color:  config.ColorMode(color),
		Output: config.OutputMode(output),
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return current, err
		}
		flags.Timeout = d
	}
	return flags, flags.Validate()
}

var askConfigFn = askConfig
