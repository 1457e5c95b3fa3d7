package weighted

import (
	"fmt"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// Options configures the bisection search.
type Options struct {
	// Tolerance is the residual-cost magnitude below which the search is
	// considered converged, in currency units.
	Tolerance float64
	// MaxIterations bounds the number of residual evaluations. Exhausting it
	// is not an error; the result reports Converged=false.
	MaxIterations int

	// MinPayment and MaxPayment override the search bracket. By default the
	// bracket is [0, monthly_income]: payments above the income are
	// economically degenerate.
	MinPayment *float64
	MaxPayment *float64

	// ExpandBracket lets the solver grow the upper bound geometrically when
	// the default bracket does not straddle a sign change.
	ExpandBracket bool
}

// DefaultOptions returns the solver defaults: 1.0 currency unit tolerance and
// a 100-iteration budget.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1.0,
		MaxIterations: 100,
	}
}

// Result is the outcome of a weighted-payment search.
type Result struct {
	// WeightedMonthlyPayment is the fixed payment found (or the last trial
	// when the iteration budget ran out).
	WeightedMonthlyPayment float64 `json:"weighted_monthly_payment"`
	// ResidualCost is total mortgage interest minus total after-tax
	// investment profit at the reported payment; approximately zero at
	// convergence.
	ResidualCost float64 `json:"residual_cost"`
	Converged    bool    `json:"converged"`
	Iterations   int     `json:"iterations"`

	// Projection is the monthly breakdown at the reported payment, used by
	// the summary aggregator.
	Projection *domain.Projection `json:"-"`
}

// UnboundedSolutionError reports that the residual has the same sign at both
// ends of the allowed payment range, so no fixed payment inside it satisfies
// the break-even equation. Both endpoint residuals are carried for diagnosis.
type UnboundedSolutionError struct {
	MinPayment    float64
	MaxPayment    float64
	ResidualAtMin float64
	ResidualAtMax float64
}

func (e *UnboundedSolutionError) Error() string {
	return fmt.Sprintf(
		"no weighted payment in [%.2f, %.2f] balances interest against investment profit (residual %.2f at %.2f, %.2f at %.2f)",
		e.MinPayment, e.MaxPayment, e.ResidualAtMin, e.MinPayment, e.ResidualAtMax, e.MaxPayment)
}
