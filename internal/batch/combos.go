package batch

import (
	"github.com/mashkanta/mashkanta/internal/config"
	"github.com/mashkanta/mashkanta/internal/domain"
)

// ExpandGrid crosses every channel with every amount, term and method.
// Linked channels are additionally crossed with every CPI rate; unlinked
// channels always carry a zero CPI rate. Rates come from the channel's
// per-term table.
func ExpandGrid(grid *config.GridConfig) []domain.LoanSpec {
	if grid == nil {
		return nil
	}

	var loans []domain.LoanSpec
	for _, channel := range grid.Channels {
		cpiRates := []float64{0}
		if channel.Linked {
			cpiRates = grid.CPIRates
		}
		for _, amount := range grid.LoanAmounts {
			for _, term := range grid.TermsMonths {
				rate, ok := channel.Rates[term]
				if !ok {
					continue
				}
				for _, method := range grid.Methods {
					for _, cpi := range cpiRates {
						loans = append(loans, domain.LoanSpec{
							Channel:    channel.Name,
							Amount:     amount,
							AnnualRate: rate,
							TermMonths: term,
							CPIRate:    cpi,
							Method:     domain.AmortizationMethod(method),
						})
					}
				}
			}
		}
	}
	return loans
}

// Combinations collects the full loan list for a configuration: the explicit
// loans followed by the expanded grid.
func Combinations(cfg *config.Configuration) []domain.LoanSpec {
	loans := make([]domain.LoanSpec, 0, len(cfg.Loans))
	for _, lc := range cfg.Loans {
		loans = append(loans, lc.ToSpec())
	}
	return append(loans, ExpandGrid(cfg.Grid)...)
}
