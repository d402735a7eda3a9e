package output

import "github.com/rpgo/tco-parity/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a report carries none.
var DefaultAssumptions = domain.DefaultUnits().GenerateAssumptions()

func reportAssumptions(report *domain.ComparisonReport) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
