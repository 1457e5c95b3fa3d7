package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mashkanta/mashkanta/internal/batch"
	"github.com/mashkanta/mashkanta/internal/config"
	"github.com/mashkanta/mashkanta/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch [config-file]",
	Short: "Run every loan combination in a configuration",
	Long:  "Expands the configured loan list and combination grid, analyzes each scenario, and writes one summary row per scenario. Interrupted runs resume when a progress store is configured",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		runner := batch.NewRunner(cfg.Parameters)
		runner.Workers, _ = cmd.Flags().GetInt("workers")
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			runner.Logger = simpleCLILogger{}
			runner.Solver.SetLogger(simpleCLILogger{})
		}

		if redisAddr, _ := cmd.Flags().GetString("redis"); redisAddr != "" {
			setKey, _ := cmd.Flags().GetString("redis-key")
			store := batch.NewRedisProgress(redisAddr, setKey)
			defer store.Close()
			runner.Progress = store
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		loans := batch.Combinations(cfg)
		fmt.Printf("Running %d scenario(s) with %d worker(s)\n", len(loans), runner.Workers)

		summaries, err := runner.Run(ctx, loans)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Completed %d of %d scenario(s)\n", len(summaries), len(loans))

		if err := writeSummaries(cmd, summaries); err != nil {
			log.Fatal(err)
		}
	},
}

var combineCmd = &cobra.Command{
	Use:   "combine [glob]",
	Short: "Combine per-scenario summary CSV files into one",
	Long:  "Merges every summary CSV matching the glob (e.g. 'summaries/*_summary.csv') into a single combined file, skipping files that fail to parse",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summaries, skipped, err := output.CombineSummaryFiles(args[0])
		for _, skip := range skipped {
			log.Printf("WARN: skipped %v", skip)
		}
		if err != nil {
			log.Fatal(err)
		}

		if err := writeSummaries(cmd, summaries); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	addOutputFlags(batchCmd)
	batchCmd.Flags().Int("workers", 4, "Number of concurrent scenario workers")
	batchCmd.Flags().Bool("debug", false, "Enable debug logging")
	batchCmd.Flags().String("redis", "", "Redis address for a resumable progress store (e.g. localhost:6379)")
	batchCmd.Flags().String("redis-key", "mashkanta:completed", "Redis set key for completed scenarios")

	addOutputFlags(combineCmd)
}
