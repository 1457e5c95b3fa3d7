package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(month int, payment, principal, interest, balance string) ScheduleEntry {
	return ScheduleEntry{
		Month:     month,
		Payment:   decimal.RequireFromString(payment),
		Principal: decimal.RequireFromString(principal),
		Interest:  decimal.RequireFromString(interest),
		Balance:   decimal.RequireFromString(balance),
	}
}

func validSchedule() Schedule {
	return Schedule{
		entry(1, "1000", "600", "400", "1200"),
		entry(2, "1000", "600", "400", "600"),
		entry(3, "1000", "600", "400", "0"),
	}
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Schedule) Schedule
		month   int
		message string
	}{
		{
			name:   "valid",
			mutate: func(s Schedule) Schedule { return s },
		},
		{
			name:   "empty is valid",
			mutate: func(Schedule) Schedule { return nil },
		},
		{
			name: "month gap",
			mutate: func(s Schedule) Schedule {
				s[1].Month = 3
				return s
			},
			month:   3,
			message: "expected month 2",
		},
		{
			name: "duplicate month",
			mutate: func(s Schedule) Schedule {
				s[1].Month = 1
				return s
			},
			month:   1,
			message: "expected month 2",
		},
		{
			name: "zero-based months",
			mutate: func(s Schedule) Schedule {
				for i := range s {
					s[i].Month--
				}
				return s
			},
			month:   0,
			message: "expected month 1",
		},
		{
			name: "negative payment",
			mutate: func(s Schedule) Schedule {
				s[0].Payment = decimal.NewFromInt(-1)
				return s
			},
			month:   1,
			message: "non-negative",
		},
		{
			name: "component mismatch",
			mutate: func(s Schedule) Schedule {
				s[1].Interest = decimal.NewFromInt(500)
				return s
			},
			month:   2,
			message: "does not equal",
		},
		{
			name: "rounding drift within tolerance",
			mutate: func(s Schedule) Schedule {
				s[1].Interest = decimal.RequireFromString("400.01")
				return s
			},
		},
		{
			name: "balance increases",
			mutate: func(s Schedule) Schedule {
				s[1].Balance = decimal.NewFromInt(1300)
				s[2].Balance = decimal.NewFromInt(1300)
				return s
			},
			month:   2,
			message: "balance increased",
		},
		{
			name: "negative balance",
			mutate: func(s Schedule) Schedule {
				s[2].Balance = decimal.NewFromInt(-5)
				return s
			},
			month:   3,
			message: "balance is negative",
		},
		{
			name: "terminal balance not zero",
			mutate: func(s Schedule) Schedule {
				s[2].Balance = decimal.NewFromInt(100)
				return s
			},
			month:   3,
			message: "terminal balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(validSchedule()).Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			var mismatch *ScheduleMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.month, mismatch.Month)
			assert.Contains(t, mismatch.Message, tt.message)
		})
	}
}

func TestScheduleMismatchError_Message(t *testing.T) {
	withMonth := &ScheduleMismatchError{Month: 7, Message: "balance increased"}
	assert.Equal(t, "schedule mismatch at month 7: balance increased", withMonth.Error())

	withoutMonth := &ScheduleMismatchError{Message: "header mismatch"}
	assert.Equal(t, "schedule mismatch: header mismatch", withoutMonth.Error())
}

func TestSchedulePaymentForMonth(t *testing.T) {
	s := validSchedule()

	assert.True(t, s.PaymentForMonth(1).Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.PaymentForMonth(3).Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.PaymentForMonth(0).IsZero())
	assert.True(t, s.PaymentForMonth(4).IsZero(), "months past the term carry no payment")
}

func TestScheduleTotals(t *testing.T) {
	s := validSchedule()

	assert.Equal(t, 3, s.TermMonths())
	assert.True(t, s.TotalPayments().Equal(decimal.NewFromInt(3000)))
	assert.True(t, s.TotalPrincipal().Equal(decimal.NewFromInt(1800)))
	assert.True(t, s.TotalInterest().Equal(decimal.NewFromInt(1200)))
}
