package batch

import (
	"context"
	"sync"

	"github.com/mashkanta/mashkanta/internal/amortize"
	"github.com/mashkanta/mashkanta/internal/calculation"
	"github.com/mashkanta/mashkanta/internal/domain"
	"github.com/mashkanta/mashkanta/internal/weighted"
)

// Runner drives a batch of independent loan scenarios through the full
// pipeline: generate the amortization schedule, project the income-based
// investment, solve for the weighted payment, and flatten the summary.
// Scenarios share nothing, so they run on a bounded worker pool.
type Runner struct {
	Params    domain.Parameters
	Solver    *weighted.Solver
	Projector *calculation.Projector
	Progress  ProgressStore
	Workers   int
	Logger    calculation.Logger
}

// NewRunner assembles a runner with default solver options, an in-memory
// progress store and a single worker.
func NewRunner(params domain.Parameters) *Runner {
	return &Runner{
		Params:    params,
		Solver:    weighted.NewDefaultSolver(),
		Projector: calculation.NewProjector(),
		Progress:  NewMemoryProgress(),
		Workers:   1,
		Logger:    calculation.NopLogger{},
	}
}

// Run analyzes every loan and returns the summaries in input order.
// Scenarios whose key is already in the progress store are skipped, and
// per-scenario failures are logged and skipped rather than aborting the
// batch; only a cancelled context stops the run early.
func (r *Runner) Run(ctx context.Context, loans []domain.LoanSpec) ([]domain.ScenarioSummary, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(loans) {
		workers = len(loans)
	}

	type slot struct {
		summary domain.ScenarioSummary
		ok      bool
	}
	results := make([]slot, len(loans))
	jobs := make(chan int)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				summary, err := r.runOne(runCtx, loans[i])
				if err != nil {
					if runCtx.Err() != nil {
						return
					}
					r.Logger.Errorf("scenario %s failed: %v", loans[i].Key(), err)
					continue
				}
				if summary != nil {
					results[i] = slot{summary: *summary, ok: true}
				}
			}
		}()
	}

feed:
	for i := range loans {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries := make([]domain.ScenarioSummary, 0, len(loans))
	for _, s := range results {
		if s.ok {
			summaries = append(summaries, s.summary)
		}
	}
	return summaries, nil
}

// runOne analyzes a single loan. A nil summary with nil error means the
// scenario was already completed and skipped.
func (r *Runner) runOne(ctx context.Context, loan domain.LoanSpec) (*domain.ScenarioSummary, error) {
	key := loan.Key()

	if r.Progress != nil {
		done, err := r.Progress.Done(ctx, key)
		if err != nil {
			return nil, err
		}
		if done {
			r.Logger.Debugf("skipping completed scenario %s", key)
			return nil, nil
		}
	}

	schedule, err := amortize.Generate(loan)
	if err != nil {
		return nil, err
	}

	projection, err := r.Projector.Project(schedule, r.Params)
	if err != nil {
		return nil, err
	}

	result, err := r.Solver.Solve(ctx, schedule, r.Params)
	if err != nil {
		return nil, err
	}
	if !result.Converged {
		r.Logger.Warnf("scenario %s did not converge after %d iterations (residual %.2f)",
			key, result.Iterations, result.ResidualCost)
	}

	summary := weighted.Summarize(loan, r.Params, schedule, projection, result)

	if r.Progress != nil {
		if err := r.Progress.MarkDone(ctx, key); err != nil {
			return nil, err
		}
	}
	return &summary, nil
}
