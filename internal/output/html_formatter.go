package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"months": FormatMonths,
	"date":   dateutil.FormatDate,
	"final":  finalValue,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	type scenarioView struct {
		domain.ScenarioResult
		Net  string
		Best bool
	}
	scenarios := make([]scenarioView, 0, 3)
	for _, sc := range results.Results() {
		scenarios = append(scenarios, scenarioView{
			ScenarioResult: sc,
			Net:            FormatCurrency(results.Net.Of(sc.Scenario)),
			Best:           sc.Scenario == results.Best,
		})
	}

	data := struct {
		*domain.ScenarioComparison
		Scenarios      []scenarioView
		Recommendation Recommendation
		Assumptions    []string
		Yearly         []domain.ChartRow
	}{results, scenarios, AnalyzeScenarios(results), assumptionsOf(results.Assumptions), YearlySnapshots(results.Monthly)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
