package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a self-contained HTML report with an inline SVG chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"breakEven": FormatBreakEven,
	"fixed":     func(d decimal.Decimal, places int32) string { return d.StringFixed(places) },
	"electricAt": func(cmp *domain.TCOComparison, year int) decimal.Decimal {
		v, _ := cmp.Electric.At(year)
		return v
	},
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	*domain.TCOComparison
	Summary Summary
	Chart   Chart
}

func (h HTMLFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	scenarios := make([]htmlScenario, len(report.Comparisons))
	for i := range report.Comparisons {
		cmp := &report.Comparisons[i]
		scenarios[i] = htmlScenario{TCOComparison: cmp, Summary: Summarize(cmp), Chart: BuildChart(cmp)}
	}

	data := struct {
		Metadata       domain.ReportMetadata
		Scenarios      []htmlScenario
		Recommendation Recommendation
		Assumptions    []string
	}{report.Metadata, scenarios, AnalyzeComparisons(report), reportAssumptions(report)}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
