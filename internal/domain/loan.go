package domain

import "fmt"

// AmortizationMethod selects how a loan's principal is repaid over its term.
type AmortizationMethod string

const (
	// MethodSpitzer is the standard fixed-payment (annuity) amortization
	// used by Israeli lenders.
	MethodSpitzer AmortizationMethod = "spitzer"
	// MethodEqualPrincipal repays a constant share of principal each month,
	// so payments start high and decline.
	MethodEqualPrincipal AmortizationMethod = "equal_principal"
	// MethodBullet pays interest only, with the full principal due in the
	// final month.
	MethodBullet AmortizationMethod = "bullet"
)

// ParseAmortizationMethod converts a config string into a method constant.
func ParseAmortizationMethod(s string) (AmortizationMethod, error) {
	switch AmortizationMethod(s) {
	case MethodSpitzer, MethodEqualPrincipal, MethodBullet:
		return AmortizationMethod(s), nil
	default:
		return "", &InvalidParameterError{
			Parameter: "amortization_method",
			Message:   fmt.Sprintf("unknown method %q (want spitzer, equal_principal or bullet)", s),
		}
	}
}

// LoanSpec describes a single mortgage combination to analyze. Rates are
// fractions; CPIRate is the assumed annual CPI for linked channels and zero
// for unlinked ones.
type LoanSpec struct {
	Channel    string             `json:"channel" yaml:"channel"`
	Amount     float64            `json:"loan_amount" yaml:"loan_amount"`
	AnnualRate float64            `json:"interest_rate" yaml:"interest_rate"`
	TermMonths int                `json:"loan_term_months" yaml:"loan_term_months"`
	CPIRate    float64            `json:"inflation_rate" yaml:"inflation_rate"`
	Method     AmortizationMethod `json:"amortization_method" yaml:"amortization_method"`
}

// Validate checks the loan parameters against their domains.
func (l LoanSpec) Validate() error {
	if l.Amount <= 0 {
		return &InvalidParameterError{
			Parameter: "loan_amount",
			Message:   fmt.Sprintf("must be positive, got %.2f", l.Amount),
		}
	}
	if l.AnnualRate < 0 {
		return &InvalidParameterError{
			Parameter: "interest_rate",
			Message:   fmt.Sprintf("must be non-negative, got %.4f", l.AnnualRate),
		}
	}
	if l.TermMonths <= 0 {
		return &InvalidParameterError{
			Parameter: "loan_term_months",
			Message:   fmt.Sprintf("must be positive, got %d", l.TermMonths),
		}
	}
	if l.CPIRate <= -1 {
		return &InvalidParameterError{
			Parameter: "inflation_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", l.CPIRate),
		}
	}
	if _, err := ParseAmortizationMethod(string(l.Method)); err != nil {
		return err
	}
	return nil
}

// Key returns a stable identifier for the combination, used as the scenario
// name and as the completed-set key when batch runs are resumed.
func (l LoanSpec) Key() string {
	return fmt.Sprintf("%s_%s_%dm_%.0f_cpi%.1f",
		l.Channel, l.Method, l.TermMonths, l.Amount, l.CPIRate*100)
}
