package weighted

import (
	"context"
	"math"

	"github.com/mashkanta/mashkanta/internal/calculation"
	"github.com/mashkanta/mashkanta/internal/domain"
)

// expansionLimit caps geometric bracket growth at 2^20 times the initial
// upper bound before the search gives up.
const expansionLimit = 20

// Solver finds the weighted monthly payment: the single fixed payment,
// applied uniformly over the analysis horizon, whose after-tax investment
// profit exactly offsets the mortgage's total interest.
//
// Each trial payment P is evaluated by re-running the projector with P in
// place of the monthly income, so the month-m contribution is P minus the
// actual mortgage payment (the full P once the mortgage ends). Raising P
// invests more, earns more profit, and lowers the residual
// interest - profit, so the residual is monotonically non-increasing in P
// and a plain bisection over a sign-changing bracket terminates.
type Solver struct {
	Projector *calculation.Projector
	Options   Options
	Logger    calculation.Logger
}

// NewSolver creates a solver with the given options.
func NewSolver(options Options) *Solver {
	return &Solver{
		Projector: calculation.NewProjector(),
		Options:   options,
		Logger:    calculation.NopLogger{},
	}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions())
}

// SetLogger installs a logger on the solver and its projector. A nil logger
// restores the no-op default.
func (s *Solver) SetLogger(logger calculation.Logger) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s.Logger = logger
}

// Solve runs the bisection search for the given schedule and parameters.
// A nil error with Converged=false means the iteration budget ran out; the
// caller decides whether the approximate payment is acceptable.
func (s *Solver) Solve(ctx context.Context, schedule domain.Schedule, params domain.Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	tolerance := s.Options.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultOptions().Tolerance
	}
	maxIterations := s.Options.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultOptions().MaxIterations
	}

	totalInterest := schedule.TotalInterest().InexactFloat64()

	lo := 0.0
	if s.Options.MinPayment != nil {
		lo = *s.Options.MinPayment
	}
	hi := params.MonthlyIncome
	if s.Options.MaxPayment != nil {
		hi = *s.Options.MaxPayment
	}

	iterations := 0
	residual := func(payment float64) (float64, *domain.Projection, error) {
		iterations++
		projection, err := s.Projector.ProjectWithIncome(schedule, params, payment)
		if err != nil {
			return 0, nil, err
		}
		r := totalInterest - projection.Totals.TotalProfitAfterTax
		s.Logger.Debugf("iteration %d: payment %.2f residual %.2f", iterations, payment, r)
		return r, projection, nil
	}

	residualLo, projectionLo, err := residual(lo)
	if err != nil {
		return nil, err
	}
	if math.Abs(residualLo) <= tolerance {
		return &Result{
			WeightedMonthlyPayment: lo,
			ResidualCost:           residualLo,
			Converged:              true,
			Iterations:             iterations,
			Projection:             projectionLo,
		}, nil
	}

	residualHi, projectionHi, err := residual(hi)
	if err != nil {
		return nil, err
	}
	if math.Abs(residualHi) <= tolerance {
		return &Result{
			WeightedMonthlyPayment: hi,
			ResidualCost:           residualHi,
			Converged:              true,
			Iterations:             iterations,
			Projection:             projectionHi,
		}, nil
	}

	if sameSign(residualLo, residualHi) && s.Options.ExpandBracket {
		for i := 0; i < expansionLimit && sameSign(residualLo, residualHi); i++ {
			lo, residualLo = hi, residualHi
			hi *= 2
			residualHi, projectionHi, err = residual(hi)
			if err != nil {
				return nil, err
			}
		}
	}
	if sameSign(residualLo, residualHi) {
		return nil, &UnboundedSolutionError{
			MinPayment:    lo,
			MaxPayment:    hi,
			ResidualAtMin: residualLo,
			ResidualAtMax: residualHi,
		}
	}

	var payment, residualAt float64
	var projectionAt *domain.Projection
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		payment = (lo + hi) / 2
		residualAt, projectionAt, err = residual(payment)
		if err != nil {
			return nil, err
		}

		if math.Abs(residualAt) <= tolerance {
			s.Logger.Infof("converged after %d iterations: weighted payment %.2f (residual %.4f)",
				iterations, payment, residualAt)
			return &Result{
				WeightedMonthlyPayment: payment,
				ResidualCost:           residualAt,
				Converged:              true,
				Iterations:             iterations,
				Projection:             projectionAt,
			}, nil
		}

		if iterations >= maxIterations {
			break
		}

		// Keep the sign change inside the bracket.
		if sameSign(residualAt, residualLo) {
			lo, residualLo = payment, residualAt
		} else {
			hi, residualHi = payment, residualAt
		}
	}

	s.Logger.Warnf("iteration budget (%d) exhausted: last payment %.2f residual %.2f",
		maxIterations, payment, residualAt)
	return &Result{
		WeightedMonthlyPayment: payment,
		ResidualCost:           residualAt,
		Converged:              false,
		Iterations:             iterations,
		Projection:             projectionAt,
	}, nil
}

func sameSign(a, b float64) bool {
	return (a > 0) == (b > 0)
}
