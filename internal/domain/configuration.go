package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Settings holds the simulation parameters that are not part of any loan or investment
type Settings struct {
	SavingsRate   decimal.Decimal `yaml:"savings_rate" json:"savings_rate" validate:"gte=0,lte=100"` // Annual percentage earned in Scenario A
	CeilingMonths int             `yaml:"ceiling_months,omitempty" json:"ceiling_months,omitempty" validate:"gte=0,lte=1200"`
}

// Configuration is the read-only snapshot the engine runs against
type Configuration struct {
	Settings    Settings     `yaml:"settings" json:"settings"`
	Loans       []Loan       `yaml:"loans" json:"loans" validate:"dive"`
	Investments []Investment `yaml:"investments" json:"investments" validate:"dive"`
}

// GenerateAssumptions describes the modeling assumptions behind a comparison
func (c *Configuration) GenerateAssumptions(ceilingMonths int) []string {
	return []string{
		fmt.Sprintf("Savings account rate (Scenario A): %s%% annually, compounded monthly", c.Settings.SavingsRate.StringFixed(2)),
		"Investment returns (Scenario C): each inflow compounds monthly at its own APR",
		"Loans are combined into one loan at the principal-weighted average rate",
		fmt.Sprintf("Simulation horizon: %d months", ceilingMonths),
		"Dates are converted to months using 30.44 days per month",
		"No taxes, fees or inflation are modeled",
	}
}
