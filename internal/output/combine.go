package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mashkanta/mashkanta/internal/domain"
)

// CombineSummaryFiles reads every per-scenario summary CSV matching pattern
// (a filepath glob, e.g. "summaries/*_summary.csv") and returns the merged
// rows, sorted by scenario name. Files that fail to parse are skipped and
// reported; one bad scenario should not sink a batch merge.
func CombineSummaryFiles(pattern string) ([]domain.ScenarioSummary, []error, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no summary files match %q", pattern)
	}
	sort.Strings(paths)

	var combined []domain.ScenarioSummary
	var skipped []error
	for _, path := range paths {
		summaries, err := readSummaryFile(path)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", path, err))
			continue
		}
		combined = append(combined, summaries...)
	}
	if len(combined) == 0 {
		return nil, skipped, fmt.Errorf("no rows parsed from %d file(s)", len(paths))
	}

	sort.Slice(combined, func(i, j int) bool { return combined[i].Name < combined[j].Name })
	return combined, skipped, nil
}

func readSummaryFile(path string) ([]domain.ScenarioSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSummaries(f)
}

// ReadSummaries parses rows produced by CSVSummarizer back into records.
func ReadSummaries(r io.Reader) ([]domain.ScenarioSummary, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != len(summaryHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(summaryHeader), len(header))
	}
	for i, name := range summaryHeader {
		if header[i] != name {
			return nil, fmt.Errorf("expected column %d to be %q, got %q", i, name, header[i])
		}
	}

	var summaries []domain.ScenarioSummary
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		summary, err := parseSummaryRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func parseSummaryRow(record []string) (domain.ScenarioSummary, error) {
	s := domain.ScenarioSummary{
		Name:               record[0],
		Channel:            record[1],
		AmortizationMethod: record[2],
	}

	decimals := map[int]*decimal.Decimal{
		3:  &s.LoanAmount,
		4:  &s.InterestRate,
		6:  &s.CPIRate,
		7:  &s.MonthlyIncome,
		8:  &s.TotalMonthlyPayments,
		9:  &s.TotalMortgageInterest,
		10: &s.TotalInvestmentAmount,
		11: &s.TotalInvestmentFutureValue,
		12: &s.TotalInvestmentTaxes,
		13: &s.TotalInvestmentProfitAfterTax,
		14: &s.WeightedMonthlyPayment,
		15: &s.WeightedCost,
		16: &s.WeightedInvestmentProfit,
	}
	for col, field := range decimals {
		value, err := decimal.NewFromString(record[col])
		if err != nil {
			return s, fmt.Errorf("invalid %s %q: %w", summaryHeader[col], record[col], err)
		}
		*field = value
	}

	term, err := strconv.Atoi(record[5])
	if err != nil {
		return s, fmt.Errorf("invalid %s %q: %w", summaryHeader[5], record[5], err)
	}
	s.LoanTermMonths = term

	iterations, err := strconv.Atoi(record[17])
	if err != nil {
		return s, fmt.Errorf("invalid %s %q: %w", summaryHeader[17], record[17], err)
	}
	s.SolverIterations = iterations

	converged, err := strconv.ParseBool(record[18])
	if err != nil {
		return s, fmt.Errorf("invalid %s %q: %w", summaryHeader[18], record[18], err)
	}
	s.Converged = converged

	return s, nil
}
