package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType distinguishes single deposits from repeating ones
type InvestmentType string

const (
	OneTime   InvestmentType = "one-time"
	Recurring InvestmentType = "recurring"
)

// Frequency is the contribution interval of a recurring investment
type Frequency string

const (
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Investment is a surplus cash inflow with its own timing and rate of return
type Investment struct {
	ID        int             `yaml:"id,omitempty" json:"id"`
	Name      string          `yaml:"name,omitempty" json:"name,omitempty"`
	Type      InvestmentType  `yaml:"type" json:"type" validate:"omitempty,oneof=one-time recurring"`
	Frequency Frequency       `yaml:"frequency" json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount" validate:"gte=0"`
	APR       decimal.Decimal `yaml:"apr" json:"apr" validate:"gte=0,lte=100"` // Annual percentage
	FromDate  time.Time       `yaml:"from_date" json:"from_date"`
	ToDate    time.Time       `yaml:"to_date" json:"to_date"`
}

// EffectiveType returns the investment type, defaulting to one-time
func (i Investment) EffectiveType() InvestmentType {
	if i.Type == "" {
		return OneTime
	}
	return i.Type
}

// EffectiveFrequency returns the contribution frequency, defaulting to monthly
func (i Investment) EffectiveFrequency() Frequency {
	if i.Frequency == "" {
		return Monthly
	}
	return i.Frequency
}

// ScheduledInflow is an investment expressed in month offsets from the simulation start
type ScheduledInflow struct {
	Name      string          `json:"name,omitempty"`
	Type      InvestmentType  `json:"type"`
	Frequency Frequency       `json:"frequency"`
	Amount    decimal.Decimal `json:"amount"`
	APR       decimal.Decimal `json:"apr"`
	FromMonth int             `json:"from_month"`
	ToMonth   int             `json:"to_month"`
}

// Interval returns the number of months between contributions.
// One-time inflows have no interval.
func (s ScheduledInflow) Interval() int {
	if s.Type != Recurring {
		return 0
	}
	if s.Frequency == Yearly {
		return 12
	}
	return 1
}

// InvestmentDetail is the terminal state of one invested inflow
type InvestmentDetail struct {
	Name       string          `json:"name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	FromMonth  int             `json:"from_month"`
	ToMonth    int             `json:"to_month"`
	FinalValue decimal.Decimal `json:"final_value"`
	Profit     decimal.Decimal `json:"profit"`
}
