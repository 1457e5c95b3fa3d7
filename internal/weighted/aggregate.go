package weighted

import (
	"github.com/shopspring/decimal"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// Summarize flattens one analyzed scenario into the record the CSV and
// console writers consume: the loan descriptors, the schedule totals, the
// income-based investment totals, and the solver outcome. Pure field
// selection and 2-decimal rounding; no further computation.
func Summarize(loan domain.LoanSpec, params domain.Parameters, schedule domain.Schedule, projection *domain.Projection, result *Result) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:               loan.Key(),
		Channel:            loan.Channel,
		AmortizationMethod: string(loan.Method),
		LoanAmount:         money(loan.Amount),
		InterestRate:       decimal.NewFromFloat(loan.AnnualRate),
		LoanTermMonths:     loan.TermMonths,
		CPIRate:            decimal.NewFromFloat(loan.CPIRate),

		MonthlyIncome:         money(params.MonthlyIncome),
		TotalMonthlyPayments:  schedule.TotalPayments().Round(2),
		TotalMortgageInterest: schedule.TotalInterest().Round(2),
	}

	if projection != nil {
		summary.TotalInvestmentAmount = money(projection.Totals.TotalInvested)
		summary.TotalInvestmentFutureValue = money(projection.Totals.TotalFutureValue)
		summary.TotalInvestmentTaxes = money(projection.Totals.TotalTax)
		summary.TotalInvestmentProfitAfterTax = money(projection.Totals.TotalProfitAfterTax)
	}

	if result != nil {
		summary.WeightedMonthlyPayment = money(result.WeightedMonthlyPayment)
		summary.WeightedCost = money(result.ResidualCost)
		summary.SolverIterations = result.Iterations
		summary.Converged = result.Converged
		if result.Projection != nil {
			summary.WeightedInvestmentProfit = money(result.Projection.Totals.TotalProfitAfterTax)
		}
	}

	return summary
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
