package domain

import "github.com/shopspring/decimal"

// ScenarioSummary is the flat one-row-per-scenario record handed to the CSV
// and console writers. Currency fields are rounded to 2 decimal places by the
// aggregator; no further computation happens downstream of this type.
type ScenarioSummary struct {
	Name               string          `json:"name"`
	Channel            string          `json:"channel"`
	AmortizationMethod string          `json:"amortization_method"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	LoanTermMonths     int             `json:"loan_term_months"`
	CPIRate            decimal.Decimal `json:"inflation_rate"`

	MonthlyIncome         decimal.Decimal `json:"monthly_income"`
	TotalMonthlyPayments  decimal.Decimal `json:"total_monthly_payments"`
	TotalMortgageInterest decimal.Decimal `json:"total_mortgage_interest"`

	TotalInvestmentAmount         decimal.Decimal `json:"total_investment_amount"`
	TotalInvestmentFutureValue    decimal.Decimal `json:"total_investment_future_value"`
	TotalInvestmentTaxes          decimal.Decimal `json:"total_investment_taxes"`
	TotalInvestmentProfitAfterTax decimal.Decimal `json:"total_investment_profit_after_tax"`

	WeightedMonthlyPayment   decimal.Decimal `json:"weighted_monthly_payment"`
	WeightedCost             decimal.Decimal `json:"weighted_cost"`
	WeightedInvestmentProfit decimal.Decimal `json:"weighted_investment_profit"`
	SolverIterations         int             `json:"solver_iterations"`
	Converged                bool            `json:"converged"`
}
