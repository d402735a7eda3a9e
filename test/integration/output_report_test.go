package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/config"
	"github.com/rpgo/tco-parity/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })
	calculation.SetIDFunc(func() string { return "integration" })
	t.Cleanup(func() {
		calculation.SetNowFunc(func() time.Time { return time.Now().UTC() })
		calculation.SetIDFunc(uuid.NewString)
	})

	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)
	report, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "json", "csv", "detailed-csv", "html"} {
		paths, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, format)
		require.Len(t, paths, 1, format)
		assert.True(t, strings.HasPrefix(filepath.Base(paths[0]), "tco_report_20250601_120000"), paths[0])
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	html, err := os.ReadFile(filepath.Join(dir, "tco_report_20250601_120000.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Urban Delivery")
	assert.Contains(t, string(html), "Long Haul")
	assert.Contains(t, string(html), "<svg")
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, config.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Scenarios, 3)
}
