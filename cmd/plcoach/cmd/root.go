package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/api"
	"github.com/plcoach/plcoach/internal/config"
	"github.com/plcoach/plcoach/internal/units"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "plcoach",
	Short: "Terminal client for your strength coaching plan",
	Long: `plcoach is a terminal client for the strength-coach platform.

Log your assigned workouts from the command line:
  • Browse your training blocks and assigned sessions
  • Begin a workout, log sets (top/backdown, straight, accessories)
  • Rest timer between sets, kg/lb display toggle
  • Complete, cancel, or resume sessions

The server is the source of truth — plcoach keeps no workout data locally.`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("plcoach version {{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().String("server", "", "Server URL (default: "+api.DefaultServerURL+")")
	rootCmd.PersistentFlags().String("unit", "", "Weight display unit: kg or lb")
}

// newClient builds an API client honoring --server and the config file.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	serverURL, _ := cmd.Flags().GetString("server")
	if serverURL == "" {
		if cfg, err := config.Load(); err == nil && cfg.Server.URL != "" {
			serverURL = cfg.Server.URL
		}
	}
	return api.NewClient(serverURL)
}

// displayUnit resolves the active unit from --unit or the config file.
func displayUnit(cmd *cobra.Command) units.Unit {
	if raw, _ := cmd.Flags().GetString("unit"); raw != "" {
		if u := units.Unit(raw); u.Valid() {
			return u
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return units.KG
	}
	return cfg.DisplayUnit()
}
