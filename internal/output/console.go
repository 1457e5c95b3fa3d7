package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// ConsoleFormatter renders a compact human-readable table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summaries []domain.ScenarioSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, "MORTGAGE WEIGHTED-PAYMENT ANALYSIS")
	fmt.Fprintf(buf, "%d scenario(s)\n\n", len(summaries))

	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTERM\tINTEREST\tINVEST PROFIT\tWEIGHTED PAYMENT\tRESIDUAL\tCONVERGED")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%dm\t%s\t%s\t%s\t%s\t%v\n",
			s.Name,
			s.LoanTermMonths,
			s.TotalMortgageInterest.StringFixed(2),
			s.TotalInvestmentProfitAfterTax.StringFixed(2),
			s.WeightedMonthlyPayment.StringFixed(2),
			s.WeightedCost.StringFixed(2),
			s.Converged,
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
