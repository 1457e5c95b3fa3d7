package calculation

import (
	"fmt"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// Projector turns a mortgage payment schedule and a parameter set into a
// month-by-month investment projection over the analysis horizon. Each month
// the income surplus over the mortgage payment is contributed and compounds
// through the final horizon month inclusive, so a contribution in month m is
// held for (horizon - m + 1) periods.
type Projector struct {
	Logger Logger
}

// NewProjector creates a projector with a no-op logger.
func NewProjector() *Projector {
	return &Projector{Logger: NopLogger{}}
}

// Project runs the projection at params.MonthlyIncome. The schedule may be
// shorter than the horizon; months past the mortgage term carry no payment,
// so the full income is invested. The schedule may not be longer than the
// horizon: the analysis is defined over the horizon and a longer mortgage has
// no meaning under it.
func (p *Projector) Project(schedule domain.Schedule, params domain.Parameters) (*domain.Projection, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := p.validateSchedule(schedule, params); err != nil {
		return nil, err
	}
	return p.run(schedule, params, params.MonthlyIncome), nil
}

// ProjectWithIncome runs the projection with income substituted for
// params.MonthlyIncome. The weighted-payment solver probes trial payments
// starting at zero, so unlike Project the substituted income may be zero.
func (p *Projector) ProjectWithIncome(schedule domain.Schedule, params domain.Parameters, income float64) (*domain.Projection, error) {
	if income < 0 {
		return nil, &domain.InvalidParameterError{
			Parameter: "monthly_income",
			Message:   fmt.Sprintf("must be non-negative, got %.2f", income),
		}
	}
	probe := params
	probe.MonthlyIncome = 1 // positivity is waived for trial incomes
	if err := probe.Validate(); err != nil {
		return nil, err
	}
	if err := p.validateSchedule(schedule, params); err != nil {
		return nil, err
	}
	return p.run(schedule, params, income), nil
}

func (p *Projector) validateSchedule(schedule domain.Schedule, params domain.Parameters) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	if schedule.TermMonths() > params.HorizonMonths {
		return &domain.ScheduleMismatchError{
			Month:   params.HorizonMonths + 1,
			Message: "schedule extends past the analysis horizon",
		}
	}
	return nil
}

func (p *Projector) run(schedule domain.Schedule, params domain.Parameters, income float64) *domain.Projection {
	projection := &domain.Projection{
		Records: make([]domain.MonthlyRecord, 0, params.HorizonMonths),
	}

	for m := 1; m <= params.HorizonMonths; m++ {
		payment := schedule.PaymentForMonth(m).InexactFloat64()

		invested := income - payment
		if params.ClampNegativeSurplus && invested < 0 {
			invested = 0
		}

		monthsHeld := params.HorizonMonths - m + 1
		years := float64(monthsHeld) / 12.0

		// Parameters are validated above, so the engine calls cannot fail.
		futureValue, _ := FutureValue(invested, params.AnnualReturnRate, years)
		tax, _ := TaxOnProfit(invested, futureValue, params.AnnualInflationRate, years, params.TaxRate)
		profitAfterTax := (futureValue - invested) - tax

		projection.Records = append(projection.Records, domain.MonthlyRecord{
			Month:                m,
			Payment:              payment,
			InvestmentAmount:     invested,
			FutureValueAtHorizon: futureValue,
			TaxAmount:            tax,
			ProfitAfterTax:       profitAfterTax,
		})

		projection.Totals.TotalInvested += invested
		projection.Totals.TotalFutureValue += futureValue
		projection.Totals.TotalTax += tax
		projection.Totals.TotalProfitAfterTax += profitAfterTax
	}

	p.Logger.Debugf("projected %d months at income %.2f: invested %.2f, future value %.2f, profit after tax %.2f",
		params.HorizonMonths, income, projection.Totals.TotalInvested,
		projection.Totals.TotalFutureValue, projection.Totals.TotalProfitAfterTax)

	return projection
}
