package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/tco-parity/internal/domain"
)

type recordingLogger struct {
	NopLogger
	infos  []string
	debugs int
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, format)
}

func (l *recordingLogger) Debugf(string, ...any) { l.debugs++ }

func fixedReportClock(t *testing.T) time.Time {
	t.Helper()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	SetNowFunc(func() time.Time { return at })
	SetIDFunc(func() string { return "fixed-id" })
	t.Cleanup(func() {
		SetNowFunc(func() time.Time { return time.Now().UTC() })
		SetIDFunc(uuid.NewString)
	})
	return at
}

func TestRunScenarios(t *testing.T) {
	at := fixedReportClock(t)
	years := 4
	cfg := &domain.Configuration{
		Units: domain.Units{Currency: "EUR"},
		Scenarios: []domain.ScenarioSpec{
			{Name: "Stock"},
			{OwnershipYears: &years},
		},
	}

	engine := NewCalculationEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", report.Metadata.ReportID)
	assert.Equal(t, at, report.Metadata.GeneratedAt)
	assert.Equal(t, "EUR", report.Metadata.Currency)
	assert.Equal(t, "km", report.Metadata.DistanceUnit)
	assert.Equal(t, 2, report.Metadata.ScenarioCount)
	assert.NotEmpty(t, report.Assumptions)

	require.Len(t, report.Comparisons, 2)
	assert.Equal(t, "Stock", report.Comparisons[0].Name)
	assert.Equal(t, 10, report.Comparisons[0].Diesel.Len())
	assert.Equal(t, "Scenario 2", report.Comparisons[1].Name)
	assert.Equal(t, 4, report.Comparisons[1].Electric.Len())
}

func TestRunScenarios_InvalidScenarioNamed(t *testing.T) {
	zero := decimal.Zero
	cfg := &domain.Configuration{
		Scenarios: []domain.ScenarioSpec{
			{Name: "ok"},
			{Name: "broken", AnnualDistance: &zero},
		},
	}
	_, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), `scenario "broken"`)
}

func TestRunScenarios_Empty(t *testing.T) {
	_, err := NewCalculationEngine().RunScenarios(context.Background(), &domain.Configuration{})
	assert.EqualError(t, err, "no scenarios provided")
}

func TestRunScenario_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().RunScenario(ctx, domain.DefaultScenario())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenario_LogsThroughEngineLogger(t *testing.T) {
	rec := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(rec)
	engine.Debug = true

	_, err := engine.RunScenario(context.Background(), domain.DefaultScenario())
	require.NoError(t, err)
	assert.Len(t, rec.infos, 1)
	// one calculator line plus one line per year
	assert.Equal(t, 11, rec.debugs)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
	assert.IsType(t, NopLogger{}, engine.Calculator.Logger)
}
