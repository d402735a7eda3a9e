package calculation

import (
	"fmt"

	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/shopspring/decimal"
)

// FindBreakEven scans the years in ascending order and returns the first year
// in which diesel's cumulative cost is less than or equal to electric's.
// Equality counts. Series must be aligned by year and of equal length.
func FindBreakEven(diesel, electric domain.TCOSeries) (domain.BreakEvenResult, error) {
	if diesel.Len() != electric.Len() {
		return domain.BreakEvenResult{}, fmt.Errorf("%w: diesel has %d years, electric has %d", ErrSeriesMismatch, diesel.Len(), electric.Len())
	}
	for i := range diesel.Points {
		if diesel.Points[i].CumulativeCost.LessThanOrEqual(electric.Points[i].CumulativeCost) {
			return domain.BreakEvenAt(diesel.Points[i].Year), nil
		}
	}
	return domain.NeverBreakEven(), nil
}

// CalculateParityPoint finds where the two cumulative cost lines intersect.
// Both series grow linearly from their purchase price, so the crossing is at
//
//	t = (electricPrice - dieselPrice) / (dieselAnnual - electricAnnual)
//
// Returns nil for parallel lines or when t falls outside (0, horizon].
func CalculateParityPoint(diesel, electric domain.TCOSeries) *domain.ParityPoint {
	horizon := diesel.Len()
	if electric.Len() < horizon {
		horizon = electric.Len()
	}
	if horizon == 0 {
		return nil
	}

	slopeGap := diesel.AnnualOperatingCost.Sub(electric.AnnualOperatingCost)
	if slopeGap.IsZero() {
		return nil
	}
	t := electric.PurchasePrice.Sub(diesel.PurchasePrice).Div(slopeGap)
	if !t.IsPositive() || t.GreaterThan(decimal.NewFromInt(int64(horizon))) {
		return nil
	}

	// Past the crossing the vehicle with the lower annual cost is cheaper
	cheaperAfter := domain.Electric
	if slopeGap.IsNegative() {
		cheaperAfter = domain.Diesel
	}

	return &domain.ParityPoint{
		Years:          t.Round(4),
		Year:           int(t.Ceil().IntPart()),
		CumulativeCost: diesel.PurchasePrice.Add(diesel.AnnualOperatingCost.Mul(t)).Round(2),
		CheaperAfter:   cheaperAfter,
	}
}
