package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/config"
	"github.com/plcoach/plcoach/internal/units"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plcoach configuration",
	Long:  `View and edit plcoach configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No config file yet — defaults are in effect:")
				fmt.Println()
				cfg := config.Default()
				fmt.Printf("  server.url           %s (built-in)\n", "default")
				fmt.Printf("  unit                 %s\n", cfg.Unit)
				fmt.Printf("  rest.default_seconds %d\n", cfg.Rest.DefaultSeconds)
				return nil
			}
			return err
		}

		fmt.Println(string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  server.url           - Coaching server base URL
  unit                 - Weight display unit: kg or lb
  rest.default_seconds - Default rest timer duration

Examples:
  plcoach config set unit lb
  plcoach config set rest.default_seconds 120`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		switch key {
		case "server.url":
			cfg.Server.URL = value
		case "unit":
			if !units.Unit(value).Valid() {
				return fmt.Errorf("unit must be kg or lb, got %q", value)
			}
			cfg.Unit = value
		case "rest.default_seconds":
			secs, err := strconv.Atoi(value)
			if err != nil || secs <= 0 {
				return fmt.Errorf("rest.default_seconds must be a positive integer, got %q", value)
			}
			cfg.Rest.DefaultSeconds = secs
		default:
			return fmt.Errorf("unknown config key %q", key)
		}

		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("✓ Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
