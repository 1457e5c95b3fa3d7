// Package amortize generates mortgage amortization schedules for the loan
// channels the analysis grid covers. The original data source scraped these
// tables from a bank calculator; generating them keeps the analysis
// self-contained.
package amortize

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// Generate builds the amortization schedule for a loan. CPI linkage is
// folded into the monthly rate (Fisher composition of the nominal rate and
// the assumed CPI), which keeps the balance column monotonically decreasing
// the way the schedule invariants require while still charging the linkage
// cost as interest.
func Generate(loan domain.LoanSpec) (domain.Schedule, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}

	rate := effectiveMonthlyRate(loan)

	switch loan.Method {
	case domain.MethodSpitzer:
		return spitzer(loan, rate), nil
	case domain.MethodEqualPrincipal:
		return equalPrincipal(loan, rate), nil
	case domain.MethodBullet:
		return bullet(loan, rate), nil
	default:
		// Unreachable: Validate rejects unknown methods.
		return nil, &domain.InvalidParameterError{
			Parameter: "amortization_method",
			Message:   string(loan.Method),
		}
	}
}

// effectiveMonthlyRate composes the nominal monthly rate (annual/12, the
// bank convention) with the monthly CPI uprating for linked channels.
func effectiveMonthlyRate(loan domain.LoanSpec) float64 {
	nominal := loan.AnnualRate / 12
	if loan.CPIRate == 0 {
		return nominal
	}
	cpi := math.Pow(1+loan.CPIRate, 1.0/12.0) - 1
	return nominal + cpi + nominal*cpi
}

// spitzer produces the fixed-payment schedule: payment solves
// P*r*(1+r)^n / ((1+r)^n - 1), interest accrues on the declining balance and
// the remainder of each payment repays principal.
func spitzer(loan domain.LoanSpec, rate float64) domain.Schedule {
	n := loan.TermMonths
	var payment float64
	if rate == 0 {
		payment = loan.Amount / float64(n)
	} else {
		factor := math.Pow(1+rate, float64(n))
		payment = loan.Amount * rate * factor / (factor - 1)
	}

	schedule := make(domain.Schedule, 0, n)
	balance := loan.Amount
	for m := 1; m <= n; m++ {
		interest := balance * rate
		principal := payment - interest
		if m == n {
			// Absorb accumulated rounding into the final payment.
			principal = balance
		}
		balance -= principal
		schedule = append(schedule, entry(m, principal, interest, balance))
	}
	return schedule
}

// equalPrincipal repays a constant principal share; interest on the declining
// balance makes the payment column strictly decreasing.
func equalPrincipal(loan domain.LoanSpec, rate float64) domain.Schedule {
	n := loan.TermMonths
	principal := loan.Amount / float64(n)

	schedule := make(domain.Schedule, 0, n)
	balance := loan.Amount
	for m := 1; m <= n; m++ {
		interest := balance * rate
		share := principal
		if m == n {
			share = balance
		}
		balance -= share
		schedule = append(schedule, entry(m, share, interest, balance))
	}
	return schedule
}

// bullet pays interest only until the final month, which repays the whole
// principal.
func bullet(loan domain.LoanSpec, rate float64) domain.Schedule {
	n := loan.TermMonths

	schedule := make(domain.Schedule, 0, n)
	balance := loan.Amount
	for m := 1; m <= n; m++ {
		interest := balance * rate
		principal := 0.0
		if m == n {
			principal = balance
		}
		balance -= principal
		schedule = append(schedule, entry(m, principal, interest, balance))
	}
	return schedule
}

// entry rounds the components to agorot and derives the payment from the
// rounded principal and interest, so every row satisfies
// payment = principal + interest exactly.
func entry(month int, principal, interest, balance float64) domain.ScheduleEntry {
	prin := decimal.NewFromFloat(principal).Round(2)
	intr := decimal.NewFromFloat(interest).Round(2)
	return domain.ScheduleEntry{
		Month:     month,
		Payment:   prin.Add(intr),
		Principal: prin,
		Interest:  intr,
		Balance:   decimal.NewFromFloat(balance).Round(2),
	}
}
