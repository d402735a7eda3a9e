package calculation

import (
	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/shopspring/decimal"
)

// TCOCalculator projects cumulative cost of ownership for both powertrains.
// It holds no mutable state and is safe for concurrent use.
type TCOCalculator struct {
	Logger Logger
}

// NewTCOCalculator creates a calculator that does not log
func NewTCOCalculator() *TCOCalculator {
	return &TCOCalculator{Logger: NopLogger{}}
}

// AnnualOperatingCost is the yearly energy bill plus maintenance:
// distance / efficiency * energy cost + maintenance.
// Efficiency must be positive.
func AnnualOperatingCost(annualDistance decimal.Decimal, v domain.VehicleParameters) decimal.Decimal {
	energy := annualDistance.Div(v.Efficiency).Mul(v.EnergyCost)
	return energy.Add(v.AnnualMaintenance)
}

// ProjectSeries evaluates purchase price + t * annual operating cost for t = 1..years
func ProjectSeries(p domain.Powertrain, v domain.VehicleParameters, annualDistance decimal.Decimal, years int) domain.TCOSeries {
	annual := AnnualOperatingCost(annualDistance, v)
	if years < 0 {
		years = 0
	}
	points := make([]domain.YearCost, years)
	for t := 1; t <= years; t++ {
		points[t-1] = domain.YearCost{
			Year:           t,
			CumulativeCost: v.PurchasePrice.Add(annual.Mul(decimal.NewFromInt(int64(t)))),
		}
	}
	return domain.TCOSeries{
		Powertrain:          p,
		PurchasePrice:       v.PurchasePrice,
		AnnualOperatingCost: annual,
		Points:              points,
	}
}

// Compute validates the input and returns the diesel series, the electric
// series and the break-even year. Nothing is computed for invalid input.
func (c *TCOCalculator) Compute(input domain.ScenarioInput) (domain.TCOSeries, domain.TCOSeries, domain.BreakEvenResult, error) {
	if err := ValidateScenario(input); err != nil {
		return domain.TCOSeries{}, domain.TCOSeries{}, domain.BreakEvenResult{}, err
	}

	diesel := ProjectSeries(domain.Diesel, input.Diesel, input.AnnualDistance, input.OwnershipYears)
	electric := ProjectSeries(domain.Electric, input.Electric, input.AnnualDistance, input.OwnershipYears)

	breakEven, err := FindBreakEven(diesel, electric)
	if err != nil {
		return domain.TCOSeries{}, domain.TCOSeries{}, domain.BreakEvenResult{}, err
	}

	c.logger().Debugf("tco %q: diesel annual=%s electric annual=%s break-even=%s",
		input.Name, diesel.AnnualOperatingCost.StringFixed(2), electric.AnnualOperatingCost.StringFixed(2), breakEven)
	return diesel, electric, breakEven, nil
}

// Compare runs Compute and derives the parity point and end-of-horizon figures
func (c *TCOCalculator) Compare(input domain.ScenarioInput) (*domain.TCOComparison, error) {
	diesel, electric, breakEven, err := c.Compute(input)
	if err != nil {
		return nil, err
	}

	cheaper := domain.Diesel
	if electric.Final().LessThan(diesel.Final()) {
		cheaper = domain.Electric
	}

	return &domain.TCOComparison{
		Name:              input.Name,
		Input:             input,
		Diesel:            diesel,
		Electric:          electric,
		BreakEven:         breakEven,
		Parity:            CalculateParityPoint(diesel, electric),
		HorizonDifference: electric.Final().Sub(diesel.Final()),
		CheaperAtHorizon:  cheaper,
	}, nil
}

func (c *TCOCalculator) logger() Logger {
	if c == nil || c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}
