// Package cmd provides the CLI commands for tco.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/tco-parity/internal/config"
	"github.com/rpgo/tco-parity/internal/logging"
)

var (
	cfgFile string
	verbose bool

	settings = config.DefaultSettings()
	logger   = zap.NewNop().Sugar()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tco",
	Short: "Compare the total cost of ownership of diesel and electric vehicles",
	Long: `tco projects the cumulative cost of owning a diesel and an electric vehicle
year by year and reports the first year in which diesel is no more expensive
than electric (the break-even year).

Examples:
  tco compute
  tco compute --distance 30000 --years 8 --format html
  tco example scenarios.yaml
  tco run scenarios.yaml --format all --output reports`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (YAML); TCO_* environment variables override it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	s, err := config.LoadSettings(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	settings = *s

	if verbose {
		settings.Logging.Level = "debug"
	}
	l, err := logging.Sugared(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return
	}
	logger = l
}
