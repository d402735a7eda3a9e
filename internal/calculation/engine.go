package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/tco-parity/internal/domain"
)

// CalculationEngine evaluates every scenario of a scenario file
type CalculationEngine struct {
	Calculator *TCOCalculator
	Debug      bool // Log the per-year series of each scenario
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		Calculator: &TCOCalculator{Logger: logger},
		Logger:     logger,
	}
}

// SetLogger sets the logger for the engine and its calculator. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	if ce.Calculator == nil {
		ce.Calculator = &TCOCalculator{}
	}
	ce.Calculator.Logger = l
}

// RunScenario compares both powertrains for a single scenario
func (ce *CalculationEngine) RunScenario(ctx context.Context, input domain.ScenarioInput) (*domain.TCOComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	comparison, err := ce.Calculator.Compare(input)
	if err != nil {
		return nil, err
	}

	if ce.Debug {
		for _, p := range comparison.Diesel.Points {
			ce.Logger.Debugf("%s year %2d: diesel=%s electric=%s diff=%s",
				input.Name, p.Year, p.CumulativeCost.StringFixed(2),
				comparison.Electric.Points[p.Year-1].CumulativeCost.StringFixed(2),
				comparison.Difference(p.Year).StringFixed(2))
		}
	}
	ce.Logger.Infof("scenario %q: break-even year %s over %d years", input.Name, comparison.BreakEven, input.OwnershipYears)
	return comparison, nil
}

// RunScenarios resolves and evaluates all scenarios. It stops at the first
// invalid scenario and reports it by name.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ComparisonReport, error) {
	inputs := config.ResolveScenarios()
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	comparisons := make([]domain.TCOComparison, len(inputs))
	for i, input := range inputs {
		comparison, err := ce.RunScenario(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", input.Name, err)
		}
		comparisons[i] = *comparison
	}

	return NewComparisonReport(config.Units, comparisons), nil
}

// NewComparisonReport stamps a batch of comparisons with a report ID, the
// generation time and the unit labels.
func NewComparisonReport(units domain.Units, comparisons []domain.TCOComparison) *domain.ComparisonReport {
	units = units.WithDefaults()
	return &domain.ComparisonReport{
		Metadata: domain.ReportMetadata{
			ReportID:      idFunc(),
			GeneratedAt:   nowFunc(),
			Currency:      units.Currency,
			DistanceUnit:  units.Distance,
			DieselUnit:    units.DieselEnergy,
			ElectricUnit:  units.ElectricEnergy,
			ScenarioCount: len(comparisons),
		},
		Comparisons: comparisons,
		Assumptions: units.GenerateAssumptions(),
	}
}
