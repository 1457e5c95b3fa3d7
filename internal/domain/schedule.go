package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// roundingTolerance is the permitted drift between a payment and the sum of
// its principal and interest components, and between the terminal balance and
// zero. Scraped and generated schedules round each column independently.
var roundingTolerance = decimal.NewFromFloat(0.01)

// ScheduleEntry is one row of a mortgage amortization table. Entries are
// value objects: produced wholesale by an extractor or generator and consumed
// read-only by the calculation engine.
type ScheduleEntry struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"month_payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule is a complete amortization table, ordered by month.
type Schedule []ScheduleEntry

// ScheduleMismatchError reports a malformed payment schedule: gaps, duplicate
// months, inconsistent components, or a balance that misbehaves.
type ScheduleMismatchError struct {
	Month   int
	Message string
}

func (e *ScheduleMismatchError) Error() string {
	if e.Month > 0 {
		return fmt.Sprintf("schedule mismatch at month %d: %s", e.Month, e.Message)
	}
	return "schedule mismatch: " + e.Message
}

// Validate checks the structural invariants of the schedule: months are
// 1-based, contiguous and strictly increasing; monetary components are
// non-negative; payment equals principal plus interest within the rounding
// tolerance; the balance never increases and ends at (approximately) zero.
// An empty schedule is valid and describes the no-mortgage case.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return nil
	}

	for i, entry := range s {
		if entry.Month != i+1 {
			return &ScheduleMismatchError{
				Month:   entry.Month,
				Message: fmt.Sprintf("expected month %d (months must be 1-based and contiguous)", i+1),
			}
		}
		if entry.Payment.IsNegative() || entry.Principal.IsNegative() || entry.Interest.IsNegative() {
			return &ScheduleMismatchError{
				Month:   entry.Month,
				Message: "payment, principal and interest must be non-negative",
			}
		}
		if diff := entry.Payment.Sub(entry.Principal.Add(entry.Interest)).Abs(); diff.GreaterThan(roundingTolerance) {
			return &ScheduleMismatchError{
				Month: entry.Month,
				Message: fmt.Sprintf("payment %s does not equal principal %s + interest %s",
					entry.Payment.StringFixed(2), entry.Principal.StringFixed(2), entry.Interest.StringFixed(2)),
			}
		}
		if entry.Balance.LessThan(roundingTolerance.Neg()) {
			return &ScheduleMismatchError{
				Month:   entry.Month,
				Message: "balance is negative",
			}
		}
		if i > 0 && entry.Balance.GreaterThan(s[i-1].Balance) {
			return &ScheduleMismatchError{
				Month:   entry.Month,
				Message: "balance increased",
			}
		}
	}

	if terminal := s[len(s)-1].Balance; terminal.GreaterThan(roundingTolerance) {
		return &ScheduleMismatchError{
			Month:   s[len(s)-1].Month,
			Message: fmt.Sprintf("terminal balance %s is not zero", terminal.StringFixed(2)),
		}
	}

	return nil
}

// TermMonths returns the length of the mortgage term.
func (s Schedule) TermMonths() int { return len(s) }

// PaymentForMonth returns the payment due in month m (1-based). Months beyond
// the mortgage term carry no payment.
func (s Schedule) PaymentForMonth(m int) decimal.Decimal {
	if m < 1 || m > len(s) {
		return decimal.Zero
	}
	return s[m-1].Payment
}

// TotalPayments sums the payment column over the whole term.
func (s Schedule) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range s {
		total = total.Add(entry.Payment)
	}
	return total
}

// TotalInterest sums the interest column over the whole term.
func (s Schedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range s {
		total = total.Add(entry.Interest)
	}
	return total
}

// TotalPrincipal sums the principal column over the whole term.
func (s Schedule) TotalPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range s {
		total = total.Add(entry.Principal)
	}
	return total
}
