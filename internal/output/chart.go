package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/tco-parity/internal/domain"
)

// Chart is the geometry of the cumulative cost chart of one comparison,
// expressed in SVG user units with the origin at the top left.
type Chart struct {
	Width, Height float64
	Left, Right   float64
	Top, Bottom   float64

	DieselPath   string
	ElectricPath string
	DieselDots   []ChartPoint
	ElectricDots []ChartPoint

	// Vertical marker at the break-even year
	HasBreakEven bool
	BreakEvenX   float64

	XTicks []ChartTick
	YTicks []ChartTick
}

// ChartPoint is a plotted value
type ChartPoint struct {
	X, Y  float64
	Label string
}

// ChartTick is an axis tick label
type ChartTick struct {
	Pos   float64
	Label string
}

const (
	chartWidth  = 720
	chartHeight = 360
	chartMargin = 60
	yTickCount  = 5
)

// BuildChart lays out both cumulative cost lines on a shared scale.
// Year 0 is plotted at the purchase price.
func BuildChart(cmp *domain.TCOComparison) Chart {
	c := Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartMargin + 20,
		Right:  chartWidth - 20,
		Top:    20,
		Bottom: chartHeight - chartMargin + 20,
	}
	years := cmp.Diesel.Len()
	if cmp.Electric.Len() < years {
		years = cmp.Electric.Len()
	}
	if years == 0 {
		return c
	}

	lo := min(cmp.Diesel.PurchasePrice.InexactFloat64(), cmp.Electric.PurchasePrice.InexactFloat64())
	hi := max(cmp.Diesel.Final().InexactFloat64(), cmp.Electric.Final().InexactFloat64())
	if hi <= lo {
		hi = lo + 1
	}

	x := func(year int) float64 {
		return c.Left + (c.Right-c.Left)*float64(year)/float64(years)
	}
	y := func(v float64) float64 {
		return c.Bottom - (c.Bottom-c.Top)*(v-lo)/(hi-lo)
	}

	series := func(s domain.TCOSeries) (string, []ChartPoint) {
		var path strings.Builder
		fmt.Fprintf(&path, "%.1f,%.1f", x(0), y(s.PurchasePrice.InexactFloat64()))
		dots := make([]ChartPoint, 0, years)
		for _, p := range s.Points[:years] {
			px, py := x(p.Year), y(p.CumulativeCost.InexactFloat64())
			fmt.Fprintf(&path, " %.1f,%.1f", px, py)
			dots = append(dots, ChartPoint{X: px, Y: py, Label: fmt.Sprintf("Year %d: %s", p.Year, FormatCurrency(p.CumulativeCost, ""))})
		}
		return path.String(), dots
	}
	c.DieselPath, c.DieselDots = series(cmp.Diesel)
	c.ElectricPath, c.ElectricDots = series(cmp.Electric)

	if cmp.BreakEven.Reached && cmp.BreakEven.Year <= years {
		c.HasBreakEven = true
		c.BreakEvenX = x(cmp.BreakEven.Year)
	}

	for yr := 0; yr <= years; yr++ {
		c.XTicks = append(c.XTicks, ChartTick{Pos: x(yr), Label: intToString(yr)})
	}
	for i := 0; i <= yTickCount; i++ {
		v := lo + (hi-lo)*float64(i)/yTickCount
		c.YTicks = append(c.YTicks, ChartTick{Pos: y(v), Label: fmt.Sprintf("%.0fk", v/1000)})
	}
	return c
}
