package calculation

import (
	"fmt"
	"math"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// minMonthlyRate is the threshold below which the closed-form annuity formula
// degenerates; a linear fallback avoids dividing by a vanishing rate.
const minMonthlyRate = 1e-9

// MonthlyRate converts an annual compound rate to its equivalent monthly
// rate: (1+annual)^(1/12) - 1.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12.0) - 1
}

// FutureValue returns principal * (1+annualRate)^years. The principal may be
// negative (a withdrawal compounds the same way a contribution does); a rate
// at or below -100% is rejected.
func FutureValue(principal, annualRate, years float64) (float64, error) {
	if annualRate <= -1 {
		return 0, &domain.InvalidParameterError{
			Parameter: "annual_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", annualRate),
		}
	}
	if years < 0 {
		return 0, &domain.InvalidParameterError{
			Parameter: "years",
			Message:   fmt.Sprintf("must be non-negative, got %.4f", years),
		}
	}
	if years == 0 {
		return principal, nil
	}
	return principal * math.Pow(1+annualRate, years), nil
}

// AnnuityFutureValue returns the future value of `months` equal end-of-month
// contributions compounding at the monthly rate derived from annualRate:
// payment * ((1+r)^months - 1) / r, with a linear fallback as r approaches
// zero.
func AnnuityFutureValue(payment, annualRate float64, months int) (float64, error) {
	if annualRate <= -1 {
		return 0, &domain.InvalidParameterError{
			Parameter: "annual_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", annualRate),
		}
	}
	if months < 0 {
		return 0, &domain.InvalidParameterError{
			Parameter: "months",
			Message:   fmt.Sprintf("must be non-negative, got %d", months),
		}
	}
	r := MonthlyRate(annualRate)
	if math.Abs(r) <= minMonthlyRate {
		return payment * float64(months), nil
	}
	return payment * (math.Pow(1+r, float64(months)) - 1) / r, nil
}

// TaxOnProfit computes the Israeli capital-gains treatment of an investment:
// the principal is first uprated by inflation over the holding period, and
// only the real profit above it is taxed. The result is never negative; a
// real loss yields zero tax, not a rebate.
func TaxOnProfit(invested, futureValue, inflationRate, years, taxRate float64) (float64, error) {
	if inflationRate <= -1 {
		return 0, &domain.InvalidParameterError{
			Parameter: "inflation_rate",
			Message:   fmt.Sprintf("must be greater than -100%%, got %.4f", inflationRate),
		}
	}
	if taxRate < 0 || taxRate >= 1 {
		return 0, &domain.InvalidParameterError{
			Parameter: "tax_rate",
			Message:   fmt.Sprintf("must be in [0, 1), got %.4f", taxRate),
		}
	}
	if years < 0 {
		return 0, &domain.InvalidParameterError{
			Parameter: "years",
			Message:   fmt.Sprintf("must be non-negative, got %.4f", years),
		}
	}
	inflationAdjusted := invested * math.Pow(1+inflationRate, years)
	taxableProfit := futureValue - inflationAdjusted
	if taxableProfit <= 0 {
		return 0, nil
	}
	return taxableProfit * taxRate, nil
}
