package output

import (
	"sort"

	"github.com/rpgo/tco-parity/internal/domain"
	money "github.com/rpgo/tco-parity/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summary is the end-of-horizon verdict for one comparison.
type Summary struct {
	ScenarioName   string
	Cheaper        domain.Powertrain
	Savings        decimal.Decimal // absolute gap between the two totals
	SavingsPercent decimal.Decimal // gap as a share of the dearer total
	BreakEven      domain.BreakEvenResult
}

// Summarize derives the verdict for a single comparison.
func Summarize(c *domain.TCOComparison) Summary {
	d := money.NewMoneyFromDecimal(c.Diesel.Final())
	e := money.NewMoneyFromDecimal(c.Electric.Final())
	gap := e.Sub(d).Abs()
	return Summary{
		ScenarioName:   c.Name,
		Cheaper:        c.CheaperAtHorizon,
		Savings:        gap.Decimal,
		SavingsPercent: gap.Share(money.Max(d, e)),
		BreakEven:      c.BreakEven,
	}
}

// Recommendation encapsulates the scenario where electric saves the most.
type Recommendation struct {
	ScenarioName string
	Savings      decimal.Decimal
	Percent      decimal.Decimal
}

// AnalyzeComparisons picks the scenario with the largest electric saving at the
// end of its horizon. Returns an empty Recommendation when diesel wins everywhere.
func AnalyzeComparisons(report *domain.ComparisonReport) Recommendation {
	var ranked []Summary
	for i := range report.Comparisons {
		s := Summarize(&report.Comparisons[i])
		if s.Cheaper == domain.Electric {
			ranked = append(ranked, s)
		}
	}
	if len(ranked) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Savings.GreaterThan(ranked[j].Savings) })
	best := ranked[0]
	return Recommendation{ScenarioName: best.ScenarioName, Savings: best.Savings, Percent: best.SavingsPercent}
}
