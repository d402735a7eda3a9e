package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/tco-parity/internal/domain"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	computeInput = domain.DefaultScenario()
	computeFormat, computeOutput, computeSave = "", "", ""
	runFormat, runOutput = "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestComputeDefaults(t *testing.T) {
	out, _, err := executeCommand(t, "compute")
	require.NoError(t, err)
	assert.Contains(t, out, "Break-even Year: 1")
	assert.Contains(t, out, "55,000.00")
	assert.Contains(t, out, "48,250.00")
}

func TestComputeFlagsOverrideDefaults(t *testing.T) {
	// A 20000 electric never lets diesel catch up
	out, _, err := executeCommand(t, "compute", "--electric-price", "20000", "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Break-even Year: Never")
	assert.Contains(t, out, "(5 years,")
}

func TestComputeReportsEveryViolation(t *testing.T) {
	_, errOut, err := executeCommand(t, "compute", "--distance", "0", "--years", "25", "--diesel-efficiency", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 invalid parameter(s)")
	assert.Contains(t, errOut, "annual_distance must be > 0")
	assert.Contains(t, errOut, "ownership_years must be between 1 and 20")
	assert.Contains(t, errOut, "diesel.efficiency must be > 0")
}

func TestComputeRejectsNonNumericFlag(t *testing.T) {
	_, _, err := executeCommand(t, "compute", "--distance", "far")
	assert.Error(t, err)
}

func TestComputeWritesReportFile(t *testing.T) {
	dir := t.TempDir()
	out, _, err := executeCommand(t, "compute", "--format", "json", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "tco_report_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExampleThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	_, _, err := executeCommand(t, "example", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, _, err := executeCommand(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario: Default")
	assert.Contains(t, out, "Scenario: High Mileage Fleet")
	assert.Contains(t, out, "Scenario: Off-Peak Charging")
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tco version "+Version+"\n", out)
}
