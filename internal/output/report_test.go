package output_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/config"
	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/internal/output"
)

func engineComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := config.NewInputParser().CreateExampleConfiguration(today)
	cfg.Settings.CeilingMonths = 36

	cmp, err := calculation.NewCalculationEngine().Compare(context.Background(), cfg)
	require.NoError(t, err)
	return cmp
}

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123456.5)); got != "123,457" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestSaveConfiguration(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Loans, 1)
	assert.True(t, loaded.Loans[0].Amount.Equal(cfg.Loans[0].Amount))
}

func TestReportGenerator_JSON_CSV(t *testing.T) {
	cmp := engineComparison(t)
	dir := t.TempDir()

	for _, format := range []string{"json", "csv", "detailed-csv"} {
		paths, err := output.GenerateReport(cmp, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		require.Len(t, paths, 1)
		data, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		assert.NotEmpty(t, data, format)
	}
}

func TestReportGenerator_DetailedCSVCoversCeiling(t *testing.T) {
	cmp := engineComparison(t)

	out, err := output.CSVDetailedExporter{}.Format(cmp)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 37)
}

func TestReportGenerator_All(t *testing.T) {
	paths, err := output.GenerateReport(engineComparison(t), "all", t.TempDir())
	require.NoError(t, err)
	assert.Len(t, paths, len(output.AvailableFormatterNames()))
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(filepath.Base(p), "surplus_report_"), p)
	}
}

func TestReportGenerator_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(engineComparison(t), "pdf", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "unsupported report format")
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestReportGenerator_AliasWritesCanonicalName(t *testing.T) {
	paths, err := output.GenerateReport(engineComparison(t), "verbose", t.TempDir())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, filepath.Base(paths[0]), "_console.txt")
}
