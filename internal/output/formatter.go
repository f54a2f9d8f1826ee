package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/surplus-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the report is written to disk.
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }
func (ff FormatterFunc) Extension() string                                   { return ff.Ext }

// reportTime stamps report filenames (override in tests).
var reportTime = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("surplus_report_%s_%s.%s",
		reportTime().Format("20060102_150405"), strings.ReplaceAll(f.Name(), "-", "_"), f.Extension()))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	ConsoleFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"summary":         "console-lite",
	"text":            "console-lite",
	"csv-detailed":    "detailed-csv",
	"monthly-csv":     "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YearlySnapshots picks the merged rows at each year boundary plus the final month
func YearlySnapshots(monthly []domain.ChartRow) []domain.ChartRow {
	var rows []domain.ChartRow
	for i, row := range monthly {
		if row.Month%12 == 0 || i == len(monthly)-1 {
			rows = append(rows, row)
		}
	}
	return rows
}
