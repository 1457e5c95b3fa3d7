package domain

import "fmt"

// InvalidParameterError reports a rate, amount or horizon outside its domain.
// It is raised immediately at the point of detection and never retried.
type InvalidParameterError struct {
	Parameter string
	Message   string
}

func (e *InvalidParameterError) Error() string {
	return "invalid parameter " + e.Parameter + ": " + e.Message
}

// Parameters holds the scenario-wide investment configuration. All rates are
// fractions (0.07 means 7%) and are held constant across the horizon.
type Parameters struct {
	// MonthlyIncome is the fixed income available each month; the surplus
	// over the mortgage payment is what gets invested.
	MonthlyIncome float64 `json:"monthly_income" yaml:"monthly_income"`

	AnnualReturnRate    float64 `json:"annual_return_rate" yaml:"annual_return_rate"`
	AnnualInflationRate float64 `json:"annual_inflation_rate" yaml:"annual_inflation_rate"`
	TaxRate             float64 `json:"tax_rate" yaml:"tax_rate"`

	// HorizonMonths is the fixed analysis period, independent of the
	// mortgage's own term.
	HorizonMonths int `json:"horizon_months" yaml:"horizon_months"`

	// ClampNegativeSurplus floors the monthly contribution at zero when the
	// mortgage payment exceeds the income. The default (false) lets a
	// negative contribution reduce future value.
	ClampNegativeSurplus bool `json:"clamp_negative_surplus" yaml:"clamp_negative_surplus"`
}

// DefaultParameters mirrors the rates the original analysis runs used:
// 7% annual return, 2% inflation, 25% tax on real profit, 30-year horizon.
func DefaultParameters() Parameters {
	return Parameters{
		AnnualReturnRate:    0.07,
		AnnualInflationRate: 0.02,
		TaxRate:             0.25,
		HorizonMonths:       360,
	}
}

// Validate checks the domain constraints on each parameter.
func (p Parameters) Validate() error {
	if p.MonthlyIncome <= 0 {
		return &InvalidParameterError{
			Parameter: "monthly_income",
			Message:   fmt.Sprintf("must be positive, got %.2f", p.MonthlyIncome),
		}
	}
	if p.AnnualReturnRate <= -1 {
		return &InvalidParameterError{
			Parameter: "annual_return_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", p.AnnualReturnRate),
		}
	}
	if p.AnnualInflationRate <= -1 {
		return &InvalidParameterError{
			Parameter: "annual_inflation_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", p.AnnualInflationRate),
		}
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return &InvalidParameterError{
			Parameter: "tax_rate",
			Message:   fmt.Sprintf("must be in [0, 1), got %.4f", p.TaxRate),
		}
	}
	if p.HorizonMonths <= 0 {
		return &InvalidParameterError{
			Parameter: "horizon_months",
			Message:   fmt.Sprintf("must be positive, got %d", p.HorizonMonths),
		}
	}
	return nil
}
