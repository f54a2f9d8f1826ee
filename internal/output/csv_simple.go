package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/surplus-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Name", "TotalPaid", "TotalInterest", "MonthsToPayoff", "PaidOff", "FinalValue", "NetPosition", "Best"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Results() {
		row := []string{
			string(sc.Scenario),
			sc.Name,
			formatAmount(sc.TotalPaid),
			formatAmount(sc.TotalInterest),
			intToString(sc.MonthsToPayoff),
			boolToString(sc.PaidOff),
			formatAmount(finalValue(sc)),
			formatAmount(results.Net.Of(sc.Scenario)),
			boolToString(sc.Scenario == results.Best),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
