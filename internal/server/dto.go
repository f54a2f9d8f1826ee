package server

import (
	"fmt"

	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CompareRequest mirrors the YAML configuration schema with calendar dates as strings
type CompareRequest struct {
	Settings    SettingsRequest     `json:"settings"`
	Loans       []LoanRequest       `json:"loans" validate:"required,min=1,dive"`
	Investments []InvestmentRequest `json:"investments" validate:"dive"`
}

type SettingsRequest struct {
	SavingsRate   *decimal.Decimal `json:"savings_rate"`
	CeilingMonths int              `json:"ceiling_months" validate:"gte=0,lte=1200"`
}

type LoanRequest struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Term         int             `json:"term" validate:"gt=0,lte=1200"`
	TermUnit     string          `json:"term_unit" validate:"omitempty,oneof=months years"`
	StartDate    string          `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type InvestmentRequest struct {
	Name      string          `json:"name"`
	Type      string          `json:"type" validate:"omitempty,oneof=one-time recurring"`
	Frequency string          `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	Amount    decimal.Decimal `json:"amount"`
	APR       decimal.Decimal `json:"apr"`
	FromDate  string          `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string          `json:"to_date" validate:"required,datetime=2006-01-02"`
}

// Configuration converts the request into the engine input. A missing savings
// rate falls back to defaultRate. Ids follow request order starting at 1.
func (r *CompareRequest) Configuration(defaultRate decimal.Decimal) (*domain.Configuration, error) {
	cfg := &domain.Configuration{
		Settings: domain.Settings{
			SavingsRate:   defaultRate,
			CeilingMonths: r.Settings.CeilingMonths,
		},
		Loans:       make([]domain.Loan, 0, len(r.Loans)),
		Investments: make([]domain.Investment, 0, len(r.Investments)),
	}
	if r.Settings.SavingsRate != nil {
		cfg.Settings.SavingsRate = *r.Settings.SavingsRate
	}

	for i, l := range r.Loans {
		start, err := dateutil.ParseDate(l.StartDate)
		if err != nil {
			return nil, fmt.Errorf("loans[%d].start_date: %w", i, err)
		}
		cfg.Loans = append(cfg.Loans, domain.Loan{
			ID:           i + 1,
			Name:         l.Name,
			Amount:       l.Amount,
			InterestRate: l.InterestRate,
			Term:         l.Term,
			TermUnit:     domain.TermUnit(l.TermUnit),
			StartDate:    start,
		})
	}

	for i, inv := range r.Investments {
		from, err := dateutil.ParseDate(inv.FromDate)
		if err != nil {
			return nil, fmt.Errorf("investments[%d].from_date: %w", i, err)
		}
		to, err := dateutil.ParseDate(inv.ToDate)
		if err != nil {
			return nil, fmt.Errorf("investments[%d].to_date: %w", i, err)
		}
		cfg.Investments = append(cfg.Investments, domain.Investment{
			ID:        i + 1,
			Name:      inv.Name,
			Type:      domain.InvestmentType(inv.Type),
			Frequency: domain.Frequency(inv.Frequency),
			Amount:    inv.Amount,
			APR:       inv.APR,
			FromDate:  from,
			ToDate:    to,
		})
	}
	return cfg, nil
}

// RequestFromConfiguration renders a configuration in request form
func RequestFromConfiguration(cfg *domain.Configuration) CompareRequest {
	rate := cfg.Settings.SavingsRate
	req := CompareRequest{
		Settings: SettingsRequest{
			SavingsRate:   &rate,
			CeilingMonths: cfg.Settings.CeilingMonths,
		},
		Loans:       make([]LoanRequest, 0, len(cfg.Loans)),
		Investments: make([]InvestmentRequest, 0, len(cfg.Investments)),
	}
	for _, l := range cfg.Loans {
		req.Loans = append(req.Loans, LoanRequest{
			Name:         l.Name,
			Amount:       l.Amount,
			InterestRate: l.InterestRate,
			Term:         l.Term,
			TermUnit:     string(l.TermUnit),
			StartDate:    dateutil.FormatDate(l.StartDate),
		})
	}
	for _, inv := range cfg.Investments {
		req.Investments = append(req.Investments, InvestmentRequest{
			Name:      inv.Name,
			Type:      string(inv.Type),
			Frequency: string(inv.Frequency),
			Amount:    inv.Amount,
			APR:       inv.APR,
			FromDate:  dateutil.FormatDate(inv.FromDate),
			ToDate:    dateutil.FormatDate(inv.ToDate),
		})
	}
	return req
}
