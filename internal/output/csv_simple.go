package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/tco-parity/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "OwnershipYears", "AnnualDistance", "DieselAnnualCost", "ElectricAnnualCost", "DieselTCO", "ElectricTCO", "HorizonDifference", "CheaperAtHorizon", "BreakEvenYear", "ParityYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, cmp := range report.Comparisons {
		parity := ""
		if cmp.Parity != nil {
			parity = cmp.Parity.Years.StringFixed(2)
		}
		row := []string{
			cmp.Name,
			intToString(cmp.Input.OwnershipYears),
			cmp.Input.AnnualDistance.String(),
			cmp.Diesel.AnnualOperatingCost.StringFixed(2),
			cmp.Electric.AnnualOperatingCost.StringFixed(2),
			cmp.Diesel.Final().StringFixed(2),
			cmp.Electric.Final().StringFixed(2),
			cmp.HorizonDifference.StringFixed(2),
			string(cmp.CheaperAtHorizon),
			cmp.BreakEven.String(),
			parity,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
