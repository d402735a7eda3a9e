package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/tco-parity/internal/domain"
)

// CSVDetailedExporter writes the year-by-year cumulative costs of every scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "DieselTCO", "ElectricTCO", "Difference", "IsBreakEvenYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Comparisons {
		cmp := &report.Comparisons[i]
		for _, p := range cmp.Diesel.Points {
			e, _ := cmp.Electric.At(p.Year)
			row := []string{
				cmp.Name,
				intToString(p.Year),
				p.CumulativeCost.StringFixed(2),
				e.StringFixed(2),
				cmp.Difference(p.Year).StringFixed(2),
				boolToString(cmp.BreakEven.Reached && cmp.BreakEven.Year == p.Year),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
