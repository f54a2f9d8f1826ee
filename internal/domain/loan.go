package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TermUnit is the unit a loan term is expressed in
type TermUnit string

const (
	TermMonths TermUnit = "months"
	TermYears  TermUnit = "years"
)

// MaxTermMonths is the longest loan term and simulation horizon accepted (100 years)
const MaxTermMonths = 1200

// Loan represents a fixed-rate amortizing loan
type Loan struct {
	ID           int             `yaml:"id,omitempty" json:"id"`
	Name         string          `yaml:"name,omitempty" json:"name,omitempty"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount" validate:"gte=0"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest_rate" validate:"gte=0,lte=100"` // Annual percentage, 5.5 means 5.5%
	Term         int             `yaml:"term" json:"term" validate:"gt=0,lte=1200"`
	TermUnit     TermUnit        `yaml:"term_unit" json:"term_unit" validate:"omitempty,oneof=months years"`
	StartDate    time.Time       `yaml:"start_date" json:"start_date"`
}

// TermMonths returns the loan term converted to months
func (l Loan) TermMonths() int {
	if l.TermUnit == TermYears {
		return l.Term * 12
	}
	return l.Term
}

// LoanSummary aggregates a set of loans into the single loan the scenarios simulate
type LoanSummary struct {
	TotalPrincipal      decimal.Decimal `json:"total_principal"`
	WeightedRate        decimal.Decimal `json:"weighted_rate"`
	TotalMinimumPayment decimal.Decimal `json:"total_minimum_payment"`
	LongestTermMonths   int             `json:"longest_term_months"`
	EarliestStartDate   time.Time       `json:"earliest_start_date"`
	LoanCount           int             `json:"loan_count"`
}

// Terms reduces the summary to the inputs of a single simulation
func (ls LoanSummary) Terms() LoanTerms {
	return LoanTerms{
		Principal:      ls.TotalPrincipal,
		AnnualRate:     ls.WeightedRate,
		MinimumPayment: ls.TotalMinimumPayment,
	}
}

// LoanTerms is the reduced loan a scenario simulator runs against
type LoanTerms struct {
	Principal      decimal.Decimal `json:"principal"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}
