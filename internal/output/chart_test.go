package output

import (
	"strings"
	"testing"

	"github.com/rpgo/tco-parity/internal/domain"
)

func TestBuildChartGeometry(t *testing.T) {
	report := buildTestReport()
	c := BuildChart(&report.Comparisons[0])

	if len(c.DieselDots) != 10 || len(c.ElectricDots) != 10 {
		t.Fatalf("expected 10 dots per series, got %d/%d", len(c.DieselDots), len(c.ElectricDots))
	}
	// year 0 plus ten years
	if n := len(strings.Fields(c.DieselPath)); n != 11 {
		t.Fatalf("expected 11 path points, got %d", n)
	}
	if len(c.XTicks) != 11 || len(c.YTicks) != yTickCount+1 {
		t.Fatalf("unexpected tick counts %d/%d", len(c.XTicks), len(c.YTicks))
	}
	if !c.HasBreakEven || c.BreakEvenX != c.DieselDots[0].X {
		t.Fatalf("break-even marker should sit on year 1, got %v at %.1f", c.HasBreakEven, c.BreakEvenX)
	}
	for _, p := range append(c.DieselDots, c.ElectricDots...) {
		if p.X < c.Left || p.X > c.Right || p.Y < c.Top || p.Y > c.Bottom {
			t.Fatalf("point %+v outside plot area", p)
		}
	}
	// the lowest purchase price maps to the bottom axis
	if !strings.HasPrefix(c.DieselPath, "80.0,320.0") {
		t.Fatalf("unexpected diesel start %s", c.DieselPath[:12])
	}
}

func TestBuildChartWithoutBreakEven(t *testing.T) {
	report := buildTestReport()
	c := BuildChart(&report.Comparisons[1])
	if c.HasBreakEven {
		t.Fatalf("expected no break-even marker")
	}
}

func TestBuildChartEmptySeries(t *testing.T) {
	c := BuildChart(&domain.TCOComparison{})
	if c.DieselPath != "" || len(c.XTicks) != 0 {
		t.Fatalf("expected empty chart, got %+v", c)
	}
}
