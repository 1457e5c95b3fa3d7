package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// summaryHeader is the combined-summary column layout, one row per scenario.
var summaryHeader = []string{
	"scenario",
	"channel",
	"amortization_method",
	"loan_amount",
	"interest_rate",
	"loan_term_months",
	"inflation_rate",
	"monthly_income",
	"total_monthly_payments",
	"total_mortgage_interest",
	"total_investment_amount",
	"total_investment_future_value",
	"total_investment_taxes",
	"total_investment_profit_after_tax",
	"weighted_monthly_payment",
	"weighted_cost",
	"weighted_investment_profit",
	"solver_iterations",
	"converged",
}

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(summaries []domain.ScenarioSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(summaryHeader); err != nil {
		return nil, err
	}

	rows := append([]domain.ScenarioSummary(nil), summaries...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	for _, s := range rows {
		row := []string{
			s.Name,
			s.Channel,
			s.AmortizationMethod,
			s.LoanAmount.StringFixed(2),
			s.InterestRate.String(),
			strconv.Itoa(s.LoanTermMonths),
			s.CPIRate.String(),
			s.MonthlyIncome.StringFixed(2),
			s.TotalMonthlyPayments.StringFixed(2),
			s.TotalMortgageInterest.StringFixed(2),
			s.TotalInvestmentAmount.StringFixed(2),
			s.TotalInvestmentFutureValue.StringFixed(2),
			s.TotalInvestmentTaxes.StringFixed(2),
			s.TotalInvestmentProfitAfterTax.StringFixed(2),
			s.WeightedMonthlyPayment.StringFixed(2),
			s.WeightedCost.StringFixed(2),
			s.WeightedInvestmentProfit.StringFixed(2),
			strconv.Itoa(s.SolverIterations),
			strconv.FormatBool(s.Converged),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
