// Package workspace holds the editable set of loans and investments a comparison runs against.
// Every mutation returns a new State; a State is never modified in place.
package workspace

import (
	"fmt"
	"time"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultHorizonYears is the investment window added after the reference date
const DefaultHorizonYears = 30

// State is an immutable snapshot of the workspace
type State struct {
	settings         domain.Settings
	loans            []domain.Loan
	investments      []domain.Investment
	nextLoanID       int
	nextInvestmentID int
}

// LoanPatch carries the loan fields to change; nil fields are left alone
type LoanPatch struct {
	Name         *string
	Amount       *decimal.Decimal
	InterestRate *decimal.Decimal
	Term         *int
	TermUnit     *domain.TermUnit
	StartDate    *time.Time
}

// InvestmentPatch carries the investment fields to change; nil fields are left alone
type InvestmentPatch struct {
	Name      *string
	Type      *domain.InvestmentType
	Frequency *domain.Frequency
	Amount    *decimal.Decimal
	APR       *decimal.Decimal
	FromDate  *time.Time
	ToDate    *time.Time
}

// New returns the starting workspace: a 100,000 mortgage at 5.5% over 30
// years and a 10,000 lump sum invested at 7% for the same 30 years.
func New(today time.Time) State {
	start := dateutil.Today(today)
	return State{
		loans: []domain.Loan{{
			ID:           1,
			Name:         "Loan 1",
			Amount:       decimal.NewFromInt(100000),
			InterestRate: decimal.NewFromFloat(5.5),
			Term:         30,
			TermUnit:     domain.TermYears,
			StartDate:    start,
		}},
		investments: []domain.Investment{{
			ID:        1,
			Name:      "Investment 1",
			Type:      domain.OneTime,
			Frequency: domain.Monthly,
			Amount:    decimal.NewFromInt(10000),
			APR:       decimal.NewFromInt(7),
			FromDate:  start,
			ToDate:    dateutil.AddYears(start, DefaultHorizonYears),
		}},
		nextLoanID:       2,
		nextInvestmentID: 2,
	}
}

// FromConfiguration builds a workspace around an existing configuration.
// Ids are kept when present and assigned in order otherwise.
func FromConfiguration(config *domain.Configuration) State {
	s := State{settings: config.Settings, nextLoanID: 1, nextInvestmentID: 1}
	for _, loan := range config.Loans {
		if loan.ID >= s.nextLoanID {
			s.nextLoanID = loan.ID + 1
		}
	}
	for _, inv := range config.Investments {
		if inv.ID >= s.nextInvestmentID {
			s.nextInvestmentID = inv.ID + 1
		}
	}
	for _, loan := range config.Loans {
		if loan.ID <= 0 {
			loan.ID = s.nextLoanID
			s.nextLoanID++
		}
		s.loans = append(s.loans, loan)
	}
	for _, inv := range config.Investments {
		if inv.ID <= 0 {
			inv.ID = s.nextInvestmentID
			s.nextInvestmentID++
		}
		s.investments = append(s.investments, inv)
	}
	return s
}

// Loans returns a copy of the loans in insertion order
func (s State) Loans() []domain.Loan {
	return append([]domain.Loan(nil), s.loans...)
}

// Investments returns a copy of the investments in insertion order
func (s State) Investments() []domain.Investment {
	return append([]domain.Investment(nil), s.investments...)
}

// Settings returns the simulation settings
func (s State) Settings() domain.Settings {
	return s.settings
}

// WithSettings replaces the simulation settings
func (s State) WithSettings(settings domain.Settings) State {
	next := s.clone()
	next.settings = settings
	return next
}

// AddLoan appends an empty 30 year loan at 5.5% starting today
func (s State) AddLoan(today time.Time) State {
	next := s.clone()
	id := next.nextLoanID
	next.loans = append(next.loans, domain.Loan{
		ID:           id,
		Name:         fmt.Sprintf("Loan %d", id),
		Amount:       decimal.Zero,
		InterestRate: decimal.NewFromFloat(5.5),
		Term:         30,
		TermUnit:     domain.TermYears,
		StartDate:    dateutil.Today(today),
	})
	next.nextLoanID++
	return next
}

// UpdateLoan applies a patch to the loan with the given id. Unknown ids leave the state unchanged.
func (s State) UpdateLoan(id int, patch LoanPatch) State {
	next := s.clone()
	for i := range next.loans {
		if next.loans[i].ID != id {
			continue
		}
		l := &next.loans[i]
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Amount != nil {
			l.Amount = *patch.Amount
		}
		if patch.InterestRate != nil {
			l.InterestRate = *patch.InterestRate
		}
		if patch.Term != nil {
			l.Term = *patch.Term
		}
		if patch.TermUnit != nil {
			l.TermUnit = *patch.TermUnit
		}
		if patch.StartDate != nil {
			l.StartDate = *patch.StartDate
		}
	}
	return next
}

// RemoveLoan drops the loan with the given id
func (s State) RemoveLoan(id int) State {
	next := s.clone()
	kept := next.loans[:0]
	for _, l := range next.loans {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	next.loans = kept
	return next
}

// AddInvestment appends an empty one-time investment at 7%. Its window opens
// at the earliest loan start date (today when there are no loans) and closes
// DefaultHorizonYears later.
func (s State) AddInvestment(today time.Time) State {
	next := s.clone()
	from := dateutil.Today(today)
	if len(next.loans) > 0 {
		starts := make([]time.Time, len(next.loans))
		for i, l := range next.loans {
			starts[i] = l.StartDate
		}
		from = dateutil.Earliest(starts...)
	}

	id := next.nextInvestmentID
	next.investments = append(next.investments, domain.Investment{
		ID:        id,
		Name:      fmt.Sprintf("Investment %d", id),
		Type:      domain.OneTime,
		Frequency: domain.Monthly,
		Amount:    decimal.Zero,
		APR:       decimal.NewFromInt(7),
		FromDate:  from,
		ToDate:    dateutil.AddYears(from, DefaultHorizonYears),
	})
	next.nextInvestmentID++
	return next
}

// UpdateInvestment applies a patch to the investment with the given id. Unknown ids leave the state unchanged.
func (s State) UpdateInvestment(id int, patch InvestmentPatch) State {
	next := s.clone()
	for i := range next.investments {
		if next.investments[i].ID != id {
			continue
		}
		inv := &next.investments[i]
		if patch.Name != nil {
			inv.Name = *patch.Name
		}
		if patch.Type != nil {
			inv.Type = *patch.Type
		}
		if patch.Frequency != nil {
			inv.Frequency = *patch.Frequency
		}
		if patch.Amount != nil {
			inv.Amount = *patch.Amount
		}
		if patch.APR != nil {
			inv.APR = *patch.APR
		}
		if patch.FromDate != nil {
			inv.FromDate = *patch.FromDate
		}
		if patch.ToDate != nil {
			inv.ToDate = *patch.ToDate
		}
	}
	return next
}

// RemoveInvestment drops the investment with the given id
func (s State) RemoveInvestment(id int) State {
	next := s.clone()
	kept := next.investments[:0]
	for _, inv := range next.investments {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	next.investments = kept
	return next
}

// Configuration returns the snapshot the calculation engine consumes
func (s State) Configuration() *domain.Configuration {
	return &domain.Configuration{
		Settings:    s.settings,
		Loans:       s.Loans(),
		Investments: s.Investments(),
	}
}

func (s State) clone() State {
	next := s
	next.loans = s.Loans()
	next.investments = s.Investments()
	return next
}
