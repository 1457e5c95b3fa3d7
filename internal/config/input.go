package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// Configuration is the top-level analysis input: the investment parameters,
// plus either an explicit loan list, a combination grid, or both.
type Configuration struct {
	Parameters domain.Parameters `yaml:"parameters"`
	Loans      []LoanConfig      `yaml:"loans,omitempty"`
	Grid       *GridConfig       `yaml:"grid,omitempty"`
}

// LoanConfig is one explicitly listed loan combination.
type LoanConfig struct {
	Channel    string  `yaml:"channel"`
	Amount     float64 `yaml:"loan_amount"`
	AnnualRate float64 `yaml:"interest_rate"`
	TermMonths int     `yaml:"loan_term_months"`
	CPIRate    float64 `yaml:"inflation_rate"`
	Method     string  `yaml:"amortization_method"`
}

// GridConfig describes a combination grid: every channel is crossed with
// every amount, term, method and (for linked channels) CPI rate. Each channel
// carries its own per-term rate table, the way bank rate sheets are published.
type GridConfig struct {
	LoanAmounts []float64       `yaml:"loan_amounts"`
	TermsMonths []int           `yaml:"loan_terms_months"`
	CPIRates    []float64       `yaml:"inflation_rates"`
	Methods     []string        `yaml:"amortization_methods"`
	Channels    []ChannelConfig `yaml:"channels"`
}

// ChannelConfig is a mortgage channel and its rate table. Linked channels are
// crossed with every CPI rate in the grid; unlinked ones always use zero.
type ChannelConfig struct {
	Name   string          `yaml:"name"`
	Linked bool            `yaml:"linked"`
	Rates  map[int]float64 `yaml:"rates"` // term months -> annual rate fraction
}

// InputParser handles parsing of analysis configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML configuration.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := Configuration{Parameters: domain.DefaultParameters()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Parameters.Validate(); err != nil {
		return err
	}
	if len(config.Loans) == 0 && config.Grid == nil {
		return fmt.Errorf("no loans or grid provided")
	}

	for i, loan := range config.Loans {
		if err := loan.ToSpec().Validate(); err != nil {
			return fmt.Errorf("loan %d validation failed: %w", i, err)
		}
	}

	if config.Grid != nil {
		if err := ip.validateGrid(config.Grid); err != nil {
			return fmt.Errorf("grid validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateGrid(grid *GridConfig) error {
	if len(grid.LoanAmounts) == 0 {
		return fmt.Errorf("loan_amounts is empty")
	}
	if len(grid.TermsMonths) == 0 {
		return fmt.Errorf("loan_terms_months is empty")
	}
	if len(grid.Methods) == 0 {
		return fmt.Errorf("amortization_methods is empty")
	}
	if len(grid.Channels) == 0 {
		return fmt.Errorf("channels is empty")
	}

	for _, method := range grid.Methods {
		if _, err := domain.ParseAmortizationMethod(method); err != nil {
			return err
		}
	}

	linked := false
	for i, channel := range grid.Channels {
		if channel.Name == "" {
			return fmt.Errorf("channel %d has no name", i)
		}
		if channel.Linked {
			linked = true
		}
		for _, term := range grid.TermsMonths {
			if _, ok := channel.Rates[term]; !ok {
				return fmt.Errorf("channel %s has no rate for term %d months", channel.Name, term)
			}
		}
	}
	if linked && len(grid.CPIRates) == 0 {
		return fmt.Errorf("inflation_rates is empty but a linked channel is present")
	}

	return nil
}

// ToSpec converts a configured loan into the domain type.
func (lc LoanConfig) ToSpec() domain.LoanSpec {
	return domain.LoanSpec{
		Channel:    lc.Channel,
		Amount:     lc.Amount,
		AnnualRate: lc.AnnualRate,
		TermMonths: lc.TermMonths,
		CPIRate:    lc.CPIRate,
		Method:     domain.AmortizationMethod(lc.Method),
	}
}
