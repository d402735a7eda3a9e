package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/tco-parity/internal/domain"
)

// ConsoleFormatter renders the year-by-year table of every scenario as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	currency := report.Metadata.Currency
	fmt.Fprintln(&buf, "DIESEL VS ELECTRIC TOTAL COST OF OWNERSHIP")
	fmt.Fprintln(&buf, "==========================================")

	for i := range report.Comparisons {
		cmp := &report.Comparisons[i]
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Scenario: %s (%d years, %s %s/year)\n", cmp.Name, cmp.Input.OwnershipYears, cmp.Input.AnnualDistance.String(), report.Metadata.DistanceUnit)
		fmt.Fprintf(&buf, "Annual operating cost: diesel %s, electric %s\n",
			FormatCurrency(cmp.Diesel.AnnualOperatingCost, currency),
			FormatCurrency(cmp.Electric.AnnualOperatingCost, currency))
		fmt.Fprintln(&buf)

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Year\tDiesel\tElectric\tDifference\t")
		for _, p := range cmp.Diesel.Points {
			e, _ := cmp.Electric.At(p.Year)
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", p.Year,
				FormatCurrency(p.CumulativeCost, ""),
				FormatCurrency(e, ""),
				FormatCurrency(cmp.Difference(p.Year), ""))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}

		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Break-even Year: %s\n", cmp.BreakEven)
		if cmp.Parity != nil {
			fmt.Fprintf(&buf, "Cost parity: %s years at %s, %s cheaper afterwards\n",
				cmp.Parity.Years.StringFixed(2), FormatCurrency(cmp.Parity.CumulativeCost, currency), cmp.Parity.CheaperAfter.Label())
		} else {
			fmt.Fprintln(&buf, "Cost parity: not within horizon")
		}
		s := Summarize(cmp)
		fmt.Fprintf(&buf, "After %d years: %s cheaper by %s (%s)\n", cmp.Input.OwnershipYears, s.Cheaper.Label(),
			FormatCurrency(s.Savings, currency), FormatPercentage(s.SavingsPercent))
	}

	if rec := AnalyzeComparisons(report); rec.ScenarioName != "" && len(report.Comparisons) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Largest electric saving: %s (%s / %s)\n", rec.ScenarioName, FormatCurrency(rec.Savings, currency), FormatPercentage(rec.Percent))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}
