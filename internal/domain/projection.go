package domain

// MonthlyRecord is the projected outcome of a single month's contribution,
// held from its contribution month through the end of the horizon.
// Amounts are float64: the compounding math runs on fractional exponents and
// decimal precision is restored only at the reporting boundary.
type MonthlyRecord struct {
	Month                int     `json:"month"`
	Payment              float64 `json:"mortgage_payment"`
	InvestmentAmount     float64 `json:"investment_amount"`
	FutureValueAtHorizon float64 `json:"future_value_at_horizon"`
	TaxAmount            float64 `json:"tax_amount"`
	ProfitAfterTax       float64 `json:"profit_after_tax"`
}

// ProjectionTotals aggregates a projection over the full horizon.
type ProjectionTotals struct {
	TotalInvested       float64 `json:"total_invested"`
	TotalFutureValue    float64 `json:"total_future_value"`
	TotalTax            float64 `json:"total_tax"`
	TotalProfitAfterTax float64 `json:"total_profit_after_tax"`
}

// Projection is the result of running a payment schedule and a parameter set
// through the monthly investment projector: one record per horizon month plus
// the aggregate totals.
type Projection struct {
	Records []MonthlyRecord  `json:"records"`
	Totals  ProjectionTotals `json:"totals"`
}
