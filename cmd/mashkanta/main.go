package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/mashkanta/mashkanta/internal/amortize"
	"github.com/mashkanta/mashkanta/internal/calculation"
	"github.com/mashkanta/mashkanta/internal/config"
	"github.com/mashkanta/mashkanta/internal/domain"
	"github.com/mashkanta/mashkanta/internal/output"
	"github.com/mashkanta/mashkanta/internal/weighted"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mashkanta",
	Short: "Mortgage vs. investment analyzer",
	Long:  "Analyzes mortgage amortization scenarios against investing the income surplus, solving for the weighted monthly payment that balances interest cost against after-tax investment profit",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [schedule-csv]",
	Short: "Analyze a single payment schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schedule, err := config.LoadScheduleCSV(args[0])
		if err != nil {
			log.Fatal(err)
		}

		params, err := paramsFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}

		solver := weighted.NewDefaultSolver()
		projector := calculation.NewProjector()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			solver.SetLogger(simpleCLILogger{})
			projector.Logger = simpleCLILogger{}
		}

		projection, err := projector.Project(schedule, params)
		if err != nil {
			log.Fatal(err)
		}
		result, err := solver.Solve(context.Background(), schedule, params)
		if err != nil {
			log.Fatal(err)
		}

		loan := domain.LoanSpec{
			Channel:    "imported",
			Amount:     schedule.TotalPrincipal().InexactFloat64(),
			TermMonths: schedule.TermMonths(),
			Method:     domain.MethodSpitzer,
		}
		summary := weighted.Summarize(loan, params, schedule, projection, result)

		if err := writeSummaries(cmd, []domain.ScenarioSummary{summary}); err != nil {
			log.Fatal(err)
		}
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate an amortization schedule CSV",
	Run: func(cmd *cobra.Command, args []string) {
		amount, _ := cmd.Flags().GetFloat64("amount")
		rate, _ := cmd.Flags().GetFloat64("rate")
		term, _ := cmd.Flags().GetInt("term")
		cpi, _ := cmd.Flags().GetFloat64("cpi")
		method, _ := cmd.Flags().GetString("method")
		channel, _ := cmd.Flags().GetString("channel")
		out, _ := cmd.Flags().GetString("output")

		loan := domain.LoanSpec{
			Channel:    channel,
			Amount:     amount,
			AnnualRate: rate,
			TermMonths: term,
			CPIRate:    cpi,
			Method:     domain.AmortizationMethod(method),
		}
		schedule, err := amortize.Generate(loan)
		if err != nil {
			log.Fatal(err)
		}

		if out == "" {
			if err := config.WriteSchedule(os.Stdout, schedule); err != nil {
				log.Fatal(err)
			}
			return
		}
		if err := config.WriteScheduleCSV(out, schedule); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %d-month schedule to %s\n", schedule.TermMonths(), out)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate an analysis configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Configuration %s is valid\n", args[0])
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mashkanta %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// paramsFromFlags builds investment parameters from the shared flag set.
func paramsFromFlags(cmd *cobra.Command) (domain.Parameters, error) {
	params := domain.DefaultParameters()

	income, err := cmd.Flags().GetFloat64("income")
	if err != nil {
		return params, err
	}
	params.MonthlyIncome = income

	if f := cmd.Flags().Lookup("return-rate"); f != nil {
		params.AnnualReturnRate, _ = cmd.Flags().GetFloat64("return-rate")
	}
	if f := cmd.Flags().Lookup("inflation-rate"); f != nil {
		params.AnnualInflationRate, _ = cmd.Flags().GetFloat64("inflation-rate")
	}
	if f := cmd.Flags().Lookup("tax-rate"); f != nil {
		params.TaxRate, _ = cmd.Flags().GetFloat64("tax-rate")
	}
	if f := cmd.Flags().Lookup("horizon"); f != nil {
		params.HorizonMonths, _ = cmd.Flags().GetInt("horizon")
	}
	if f := cmd.Flags().Lookup("clamp-negative"); f != nil {
		params.ClampNegativeSurplus, _ = cmd.Flags().GetBool("clamp-negative")
	}

	return params, params.Validate()
}

// writeSummaries renders summaries with the formatter selected via --format
// and writes them to --output or stdout.
func writeSummaries(cmd *cobra.Command, summaries []domain.ScenarioSummary) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}

	data, err := formatter.Format(summaries)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d scenario(s) to %s\n", len(summaries), out)
	return nil
}

func addParameterFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("income", 0, "Monthly income available (required)")
	cmd.Flags().Float64("return-rate", 0.07, "Annual investment return rate (fraction)")
	cmd.Flags().Float64("inflation-rate", 0.02, "Annual inflation rate (fraction)")
	cmd.Flags().Float64("tax-rate", 0.25, "Tax rate on real investment profit (fraction)")
	cmd.Flags().Int("horizon", 360, "Analysis horizon in months")
	cmd.Flags().Bool("clamp-negative", false, "Floor negative monthly surplus at zero")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "console", "Output format: console, csv or json")
	cmd.Flags().String("output", "", "Write output to file instead of stdout")
}

func init() {
	addParameterFlags(analyzeCmd)
	addOutputFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = analyzeCmd.MarkFlagRequired("income")

	scheduleCmd.Flags().Float64("amount", 100000, "Loan amount")
	scheduleCmd.Flags().Float64("rate", 0.05, "Annual interest rate (fraction)")
	scheduleCmd.Flags().Int("term", 360, "Loan term in months")
	scheduleCmd.Flags().Float64("cpi", 0, "Annual CPI rate for linked channels (fraction)")
	scheduleCmd.Flags().String("method", string(domain.MethodSpitzer), "Amortization method: spitzer, equal_principal or bullet")
	scheduleCmd.Flags().String("channel", "fixed_unlinked", "Mortgage channel name")
	scheduleCmd.Flags().String("output", "", "Write schedule to file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
