package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/surplus-calculator/internal/domain"
)

// CSVDetailedExporter writes the merged monthly table, one row per month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "ScenarioALoanBalance", "ScenarioASavings", "ScenarioBLoanBalance", "ScenarioCLoanBalance", "ScenarioCInvestment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range results.Monthly {
		record := []string{
			intToString(row.Month),
			formatAmount(row.BankSurplusBalance),
			formatAmount(row.BankSurplusSavings),
			formatAmount(row.PrepaymentBalance),
			formatAmount(row.InvestSurplusBalance),
			formatAmount(row.InvestSurplusValue),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
