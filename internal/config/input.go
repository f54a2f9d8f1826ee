package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpgo/surplus-calculator/internal/domain"
	"github.com/rpgo/surplus-calculator/internal/workspace"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNoLoans is returned when a configuration has nothing to amortize
var ErrNoLoans = errors.New("at least one loan is required")

// InputParser handles parsing of input configuration files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: NewValidator()}
}

// NewValidator returns a validator that understands decimal fields and reports yaml field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if dec, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := dec.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return errors.New("configuration is required")
	}
	if len(config.Loans) == 0 {
		return ErrNoLoans
	}

	if err := ip.validator().Struct(config); err != nil {
		return describeValidation(err)
	}

	for i := range config.Loans {
		if err := ip.validateLoan(&config.Loans[i]); err != nil {
			return fmt.Errorf("loan %d validation failed: %w", i, err)
		}
	}
	for i := range config.Investments {
		if err := ip.validateInvestment(&config.Investments[i]); err != nil {
			return fmt.Errorf("investment %d validation failed: %w", i, err)
		}
	}

	return nil
}

func (ip *InputParser) validator() *validator.Validate {
	if ip.validate == nil {
		ip.validate = NewValidator()
	}
	return ip.validate
}

// validateLoan covers what struct tags cannot express
func (ip *InputParser) validateLoan(loan *domain.Loan) error {
	if loan.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if loan.TermMonths() > domain.MaxTermMonths {
		return fmt.Errorf("term of %d months exceeds the maximum of %d", loan.TermMonths(), domain.MaxTermMonths)
	}
	return nil
}

// validateInvestment covers what struct tags cannot express.
// A window ending before it starts is allowed and simply never contributes.
// Frequency is ignored for one-time investments.
func (ip *InputParser) validateInvestment(inv *domain.Investment) error {
	if inv.FromDate.IsZero() {
		return fmt.Errorf("from date is required")
	}
	if inv.ToDate.IsZero() {
		return fmt.Errorf("to date is required")
	}
	return nil
}

// describeValidation flattens validator errors into one readable error
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Configuration.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return &ValidationError{Problems: msgs}
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Problems, "; ")
}

// CreateExampleConfiguration creates the default configuration: one 30 year
// mortgage and one lump sum invested over the same horizon, starting today.
func (ip *InputParser) CreateExampleConfiguration(today time.Time) *domain.Configuration {
	return workspace.New(today).Configuration()
}

// MarshalConfiguration renders a configuration as YAML
func (ip *InputParser) MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
