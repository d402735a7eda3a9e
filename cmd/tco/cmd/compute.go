package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/config"
	"github.com/rpgo/tco-parity/internal/domain"
)

// decimalFlag adapts decimal.Decimal to pflag.Value
type decimalFlag struct{ d *decimal.Decimal }

func (f decimalFlag) String() string {
	if f.d == nil {
		return ""
	}
	return f.d.String()
}

func (f decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*f.d = v
	return nil
}

func (f decimalFlag) Type() string { return "decimal" }

var (
	computeInput  = domain.DefaultScenario()
	computeFormat string
	computeOutput string
	computeSave   string
)

// computeCmd evaluates a single scenario given on the command line
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the TCO series and break-even year for one scenario",
	Long: `Compute the cumulative cost of ownership of both vehicles for every year of
the ownership horizon and report the break-even year. Any parameter not given
on the command line uses its default.

Examples:
  tco compute
  tco compute --electric-price 35000 --years 12
  tco compute --distance 40000 --format csv --output reports`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func init() {
	f := computeCmd.Flags()
	f.StringVar(&computeInput.Name, "name", computeInput.Name, "scenario label")
	f.Var(decimalFlag{&computeInput.Diesel.PurchasePrice}, "diesel-price", "diesel purchase price")
	f.Var(decimalFlag{&computeInput.Diesel.EnergyCost}, "diesel-energy-cost", "diesel fuel cost per litre")
	f.Var(decimalFlag{&computeInput.Diesel.AnnualMaintenance}, "diesel-maintenance", "diesel annual maintenance")
	f.Var(decimalFlag{&computeInput.Diesel.Efficiency}, "diesel-efficiency", "diesel efficiency (km per litre)")
	f.Var(decimalFlag{&computeInput.Electric.PurchasePrice}, "electric-price", "electric purchase price")
	f.Var(decimalFlag{&computeInput.Electric.EnergyCost}, "electric-energy-cost", "electricity cost per kWh")
	f.Var(decimalFlag{&computeInput.Electric.AnnualMaintenance}, "electric-maintenance", "electric annual maintenance")
	f.Var(decimalFlag{&computeInput.Electric.Efficiency}, "electric-efficiency", "electric efficiency (km per kWh)")
	f.Var(decimalFlag{&computeInput.AnnualDistance}, "distance", "annual distance driven (km)")
	f.IntVar(&computeInput.OwnershipYears, "years", computeInput.OwnershipYears,
		fmt.Sprintf("ownership horizon in years (%d-%d)", domain.MinOwnershipYears, domain.MaxOwnershipYears))
	f.StringVarP(&computeFormat, "format", "f", "", "output format (console, csv, detailed-csv, json, html, echarts, all)")
	f.StringVarP(&computeOutput, "output", "o", "", "directory for report files")
	f.StringVar(&computeSave, "save", "", "also save the scenario as a YAML scenario file")
}

func runCompute(cmd *cobra.Command, args []string) error {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = verbose

	comparison, err := engine.RunScenario(cmd.Context(), computeInput)
	if err != nil {
		if isValidationError(err) {
			n := printViolations(cmd.ErrOrStderr(), err)
			return fmt.Errorf("%d invalid parameter(s)", n)
		}
		return err
	}

	if computeSave != "" {
		scenarioFile := &domain.Configuration{
			Units:     domain.Units{Currency: settings.Output.Currency}.WithDefaults(),
			Scenarios: []domain.ScenarioSpec{domain.SpecFromInput(computeInput)},
		}
		if err := config.SaveConfiguration(scenarioFile, computeSave); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
		logger.Infof("scenario saved to %s", computeSave)
	}

	units := domain.DefaultUnits()
	units.Currency = settings.Output.Currency
	report := calculation.NewComparisonReport(units, []domain.TCOComparison{*comparison})
	return writeReport(cmd.OutOrStdout(), report, computeFormat, computeOutput)
}
