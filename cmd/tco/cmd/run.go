package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/config"
)

var (
	runFormat string
	runOutput string
)

// runCmd evaluates every scenario of a scenario file
var runCmd = &cobra.Command{
	Use:   "run <scenarios.yaml>",
	Short: "Compute every scenario in a scenario file",
	Long: `Load a YAML scenario file, resolve each scenario against the file defaults
and the built-in defaults, and report the TCO comparison of each.

Examples:
  tco run scenarios.yaml
  tco run scenarios.yaml --format html --output reports`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarios,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "output format (console, csv, detailed-csv, json, html, echarts, all)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "directory for report files")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	scenarios, err := parser.LoadFromFile(args[0])
	if err != nil {
		if isValidationError(err) {
			n := printViolations(cmd.ErrOrStderr(), err)
			return fmt.Errorf("%s: %d invalid parameter(s)", args[0], n)
		}
		return err
	}
	logger.Debugf("loaded %d scenario(s) from %s", len(scenarios.Scenarios), args[0])

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = verbose

	report, err := engine.RunScenarios(cmd.Context(), scenarios)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, runFormat, runOutput)
}
