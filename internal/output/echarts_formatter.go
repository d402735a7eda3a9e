package output

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rpgo/tco-parity/internal/domain"
)

// EChartsFormatter renders one interactive line chart per scenario. The page
// loads the ECharts runtime from its CDN when opened.
type EChartsFormatter struct{}

func (e EChartsFormatter) Name() string      { return "echarts" }
func (e EChartsFormatter) Extension() string { return "html" }

func (e EChartsFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = "Diesel vs Electric TCO"
	for i := range report.Comparisons {
		page.AddCharts(scenarioLineChart(&report.Comparisons[i], report.Metadata))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func scenarioLineChart(cmp *domain.TCOComparison, meta domain.ReportMetadata) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: cmp.Name, Subtitle: "Break-even: " + FormatBreakEven(cmp.BreakEven)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cumulative cost (" + meta.Currency + ")"}),
	)

	years := make([]string, 0, cmp.Diesel.Len())
	diesel := make([]opts.LineData, 0, cmp.Diesel.Len())
	electric := make([]opts.LineData, 0, cmp.Electric.Len())
	for _, p := range cmp.Diesel.Points {
		e, _ := cmp.Electric.At(p.Year)
		years = append(years, intToString(p.Year))
		diesel = append(diesel, opts.LineData{Value: p.CumulativeCost.Round(2).InexactFloat64()})
		electric = append(electric, opts.LineData{Value: e.Round(2).InexactFloat64()})
	}

	var dieselOpts []charts.SeriesOpts
	if cmp.BreakEven.Reached {
		dieselOpts = append(dieselOpts, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  "Break-even",
			XAxis: intToString(cmp.BreakEven.Year),
		}))
	}

	line.SetXAxis(years).
		AddSeries(domain.Diesel.Label(), diesel, dieselOpts...).
		AddSeries(domain.Electric.Label(), electric)
	return line
}
