package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioID identifies one of the three surplus strategies
type ScenarioID string

const (
	BankSurplus   ScenarioID = "A" // minimum payment, surplus saved in a bank account
	Prepayment    ScenarioID = "B" // minimum payment plus surplus applied to principal
	InvestSurplus ScenarioID = "C" // minimum payment, surplus invested per inflow
)

// Name returns the display name of the scenario
func (id ScenarioID) Name() string {
	switch id {
	case BankSurplus:
		return "Minimum Payment + Save"
	case Prepayment:
		return "Minimum Payment + Extra Principal"
	case InvestSurplus:
		return "Minimum Payment + Invest"
	default:
		return string(id)
	}
}

// MonthlyEntry is one row of a scenario ledger
type MonthlyEntry struct {
	Month         int             `json:"month"`
	LoanBalance   decimal.Decimal `json:"loan_balance"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`

	// Scenario A
	SavingsBalance decimal.Decimal `json:"savings_balance"`
	Saved          decimal.Decimal `json:"saved"`

	// Scenario B
	ExtraPaid decimal.Decimal `json:"extra_paid"`

	// Scenario C
	InvestmentValue decimal.Decimal `json:"investment_value"`
	Invested        decimal.Decimal `json:"invested"`
}

// ScenarioResult holds the totals and monthly ledger of a single scenario run
type ScenarioResult struct {
	Scenario       ScenarioID      `json:"scenario"`
	Name           string          `json:"name"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	MonthsToPayoff int             `json:"months_to_payoff"`
	PaidOff        bool            `json:"paid_off"` // false when the minimum payment stopped covering interest
	Ledger         []MonthlyEntry  `json:"ledger,omitempty"`

	// Scenario A
	SavingsBalance decimal.Decimal `json:"savings_balance"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`

	// Scenario C
	InvestmentValue decimal.Decimal    `json:"investment_value"`
	Investments     []InvestmentDetail `json:"investments,omitempty"`
}

// FinalEntry returns the last ledger row, or a zero entry for an empty ledger
func (sr *ScenarioResult) FinalEntry() MonthlyEntry {
	if len(sr.Ledger) == 0 {
		return MonthlyEntry{}
	}
	return sr.Ledger[len(sr.Ledger)-1]
}

// ChartRow aligns the three scenario ledgers on a shared month index
type ChartRow struct {
	Month                int             `json:"month"`
	BankSurplusBalance   decimal.Decimal `json:"scenario_a_loan_balance"`
	BankSurplusSavings   decimal.Decimal `json:"scenario_a_savings"`
	PrepaymentBalance    decimal.Decimal `json:"scenario_b_loan_balance"`
	InvestSurplusBalance decimal.Decimal `json:"scenario_c_loan_balance"`
	InvestSurplusValue   decimal.Decimal `json:"scenario_c_investment"`
}

// NetPositions are terminal asset values minus total interest, used to rank scenarios
type NetPositions struct {
	BankSurplus   decimal.Decimal `json:"a"`
	Prepayment    decimal.Decimal `json:"b"`
	InvestSurplus decimal.Decimal `json:"c"`
}

// Of returns the net position of one scenario
func (np NetPositions) Of(id ScenarioID) decimal.Decimal {
	switch id {
	case BankSurplus:
		return np.BankSurplus
	case Prepayment:
		return np.Prepayment
	case InvestSurplus:
		return np.InvestSurplus
	default:
		return decimal.Zero
	}
}

// ScenarioComparison is the full output of one engine invocation
type ScenarioComparison struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	Loans         LoanSummary    `json:"loans"`
	CeilingMonths int            `json:"ceiling_months"`
	BankSurplus   ScenarioResult `json:"scenario_a"`
	Prepayment    ScenarioResult `json:"scenario_b"`
	InvestSurplus ScenarioResult `json:"scenario_c"`
	Monthly       []ChartRow     `json:"monthly,omitempty"`
	Net           NetPositions   `json:"net_positions"`
	Best          ScenarioID     `json:"best_scenario"`
	Assumptions   []string       `json:"assumptions"`
}

// Results returns the three scenario results in A, B, C order
func (sc *ScenarioComparison) Results() []ScenarioResult {
	return []ScenarioResult{sc.BankSurplus, sc.Prepayment, sc.InvestSurplus}
}

// Result returns the result for one scenario id
func (sc *ScenarioComparison) Result(id ScenarioID) *ScenarioResult {
	switch id {
	case BankSurplus:
		return &sc.BankSurplus
	case Prepayment:
		return &sc.Prepayment
	case InvestSurplus:
		return &sc.InvestSurplus
	default:
		return nil
	}
}

// InterestSaved returns how much less interest scenario B paid than scenario A
func (sc *ScenarioComparison) InterestSaved() decimal.Decimal {
	return sc.BankSurplus.TotalInterest.Sub(sc.Prepayment.TotalInterest)
}

// WithoutLedgers returns a copy with per-month data stripped
func (sc *ScenarioComparison) WithoutLedgers() *ScenarioComparison {
	cp := *sc
	cp.BankSurplus.Ledger = nil
	cp.Prepayment.Ledger = nil
	cp.InvestSurplus.Ledger = nil
	cp.Monthly = nil
	return &cp
}
