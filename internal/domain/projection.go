package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// YearCost is the cumulative cost of ownership at the end of a given year
type YearCost struct {
	Year           int             `json:"year"`
	CumulativeCost decimal.Decimal `json:"cumulative_cost"`
}

// TCOSeries is the cumulative cost projection of one powertrain, one point per year starting at year 1
type TCOSeries struct {
	Powertrain          Powertrain      `json:"powertrain"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	AnnualOperatingCost decimal.Decimal `json:"annual_operating_cost"`
	Points              []YearCost      `json:"points"`
}

// Len returns the number of years in the series
func (s TCOSeries) Len() int { return len(s.Points) }

// At returns the cumulative cost at the given 1-based year
func (s TCOSeries) At(year int) (decimal.Decimal, bool) {
	if year < 1 || year > len(s.Points) {
		return decimal.Zero, false
	}
	return s.Points[year-1].CumulativeCost, true
}

// Final returns the cumulative cost at the end of the horizon (zero for an empty series)
func (s TCOSeries) Final() decimal.Decimal {
	if len(s.Points) == 0 {
		return decimal.Zero
	}
	return s.Points[len(s.Points)-1].CumulativeCost
}

// BreakEvenResult is the first year in which diesel's cumulative cost is no
// worse than electric's. Reached is false when that never happens inside the horizon.
type BreakEvenResult struct {
	Year    int  `json:"year"`
	Reached bool `json:"reached"`
}

// BreakEvenAt returns a reached result for the given year
func BreakEvenAt(year int) BreakEvenResult {
	return BreakEvenResult{Year: year, Reached: true}
}

// NeverBreakEven returns the "not reached within horizon" result
func NeverBreakEven() BreakEvenResult {
	return BreakEvenResult{}
}

// String renders the year number or "Never"
func (b BreakEvenResult) String() string {
	if !b.Reached {
		return "Never"
	}
	return strconv.Itoa(b.Year)
}

// ParityPoint is where the two linear cumulative cost lines intersect
type ParityPoint struct {
	// Fractional number of years after purchase (e.g. 5.97)
	Years decimal.Decimal `json:"years"`

	// Whole ownership year in which parity falls (ceil of Years)
	Year int `json:"year"`

	// Cumulative cost of both vehicles at parity
	CumulativeCost decimal.Decimal `json:"cumulative_cost"`

	// Powertrain that is cheaper once parity is passed
	CheaperAfter Powertrain `json:"cheaper_after"`
}

// TCOComparison is the full result of comparing both powertrains for one scenario
type TCOComparison struct {
	Name      string          `json:"name"`
	Input     ScenarioInput   `json:"input"`
	Diesel    TCOSeries       `json:"diesel"`
	Electric  TCOSeries       `json:"electric"`
	BreakEven BreakEvenResult `json:"break_even"`

	// Nil when the lines do not cross inside the horizon
	Parity *ParityPoint `json:"parity,omitempty"`

	// Electric minus diesel cumulative cost at the end of the horizon
	HorizonDifference decimal.Decimal `json:"horizon_difference"`

	// Powertrain with the lower cumulative cost at the end of the horizon (diesel on a tie)
	CheaperAtHorizon Powertrain `json:"cheaper_at_horizon"`
}

// Difference returns electric minus diesel cumulative cost for a year
func (c *TCOComparison) Difference(year int) decimal.Decimal {
	d, _ := c.Diesel.At(year)
	e, _ := c.Electric.At(year)
	return e.Sub(d)
}

// ReportMetadata describes a generated comparison report
type ReportMetadata struct {
	ReportID      string    `json:"report_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Currency      string    `json:"currency"`
	DistanceUnit  string    `json:"distance_unit"`
	DieselUnit    string    `json:"diesel_energy_unit"`
	ElectricUnit  string    `json:"electric_energy_unit"`
	ScenarioCount int       `json:"scenario_count"`
}

// ComparisonReport groups the comparisons computed from one scenario set
type ComparisonReport struct {
	Metadata    ReportMetadata  `json:"metadata"`
	Comparisons []TCOComparison `json:"comparisons"`
	Assumptions []string        `json:"assumptions"`
}
