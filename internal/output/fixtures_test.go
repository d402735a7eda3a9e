package output

import (
	"time"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/shopspring/decimal"
)

// buildTestReport returns the default scenario plus a cheap-electric scenario
// where diesel never catches up.
func buildTestReport() *domain.ComparisonReport {
	calc := calculation.NewTCOCalculator()

	def, err := calc.Compare(domain.DefaultScenario())
	if err != nil {
		panic(err)
	}

	cheap := domain.DefaultScenario()
	cheap.Name = "Cheap EV"
	cheap.Electric.PurchasePrice = decimal.NewFromInt(20000)
	cheap.OwnershipYears = 5
	never, err := calc.Compare(cheap)
	if err != nil {
		panic(err)
	}

	units := domain.DefaultUnits()
	return &domain.ComparisonReport{
		Metadata: domain.ReportMetadata{
			ReportID:      "test-report",
			GeneratedAt:   time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			Currency:      units.Currency,
			DistanceUnit:  units.Distance,
			DieselUnit:    units.DieselEnergy,
			ElectricUnit:  units.ElectricEnergy,
			ScenarioCount: 2,
		},
		Comparisons: []domain.TCOComparison{*def, *never},
		Assumptions: units.GenerateAssumptions(),
	}
}
