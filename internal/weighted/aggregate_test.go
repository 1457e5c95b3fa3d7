package weighted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta/mashkanta/internal/calculation"
	"github.com/mashkanta/mashkanta/internal/domain"
)

func TestSummarize(t *testing.T) {
	schedule := constantSchedule(360, 2245, 2245)
	params := solverParams()
	loan := domain.LoanSpec{
		Channel:    "prime",
		Amount:     808200,
		AnnualRate: 0.045,
		TermMonths: 360,
		Method:     domain.MethodSpitzer,
	}

	projection, err := calculation.NewProjector().Project(schedule, params)
	require.NoError(t, err)
	result, err := NewDefaultSolver().Solve(context.Background(), schedule, params)
	require.NoError(t, err)

	summary := Summarize(loan, params, schedule, projection, result)

	assert.Equal(t, loan.Key(), summary.Name)
	assert.Equal(t, "prime", summary.Channel)
	assert.Equal(t, "spitzer", summary.AmortizationMethod)
	assert.Equal(t, 360, summary.LoanTermMonths)
	assert.Equal(t, "808200", summary.LoanAmount.String())
	assert.Equal(t, "12000", summary.MonthlyIncome.String())

	assert.Equal(t, "1616400", summary.TotalMonthlyPayments.String())
	assert.Equal(t, "808200", summary.TotalMortgageInterest.String())

	// Income-based totals come from the projection at the full income.
	invested, _ := summary.TotalInvestmentAmount.Float64()
	assert.InDelta(t, projection.Totals.TotalInvested, invested, 0.01)

	// Weighted figures come from the solver's own projection.
	assert.True(t, summary.Converged)
	assert.Equal(t, result.Iterations, summary.SolverIterations)
	weighted, _ := summary.WeightedMonthlyPayment.Float64()
	assert.InDelta(t, result.WeightedMonthlyPayment, weighted, 0.01)
	profit, _ := summary.WeightedInvestmentProfit.Float64()
	assert.InDelta(t, result.Projection.Totals.TotalProfitAfterTax, profit, 0.01)
}

func TestSummarize_NilSolverResult(t *testing.T) {
	schedule := constantSchedule(12, 500, 500)
	params := solverParams()
	loan := domain.LoanSpec{Channel: "fixed", Amount: 6000, TermMonths: 12, Method: domain.MethodSpitzer}

	summary := Summarize(loan, params, schedule, nil, nil)

	assert.False(t, summary.Converged)
	assert.Zero(t, summary.SolverIterations)
	assert.True(t, summary.TotalInvestmentAmount.IsZero())
	assert.True(t, summary.WeightedMonthlyPayment.IsZero())
	assert.Equal(t, "6000", summary.TotalMonthlyPayments.String())
}
