package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/benchcheck/internal/ctxlog"
	"github.com/vk/benchcheck/internal/plan"
	"github.com/vk/benchcheck/internal/randstate"
	"github.com/vk/benchcheck/internal/validate"
)

// Run loads the benchmark, validates the filters, normalizes the random state
// and writes the resulting run plan. Dataset and solver filters are both
// checked before anything else happens, and failures of both are reported
// together.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	b, err := a.loader.Load(ctx, a.config.BenchmarkPath)
	if err != nil {
		return fmt.Errorf("failed to load benchmark: %w", err)
	}

	if err := errors.Join(
		validate.Datasets(b, a.config.DatasetPatterns),
		validate.Solvers(b, a.config.SolverPatterns),
	); err != nil {
		a.logger.Debug("Filter validation failed.", "error", err)
		return err
	}
	a.logger.Debug("Filter patterns validated.",
		"dataset_patterns", a.config.DatasetPatterns,
		"solver_patterns", a.config.SolverPatterns)

	gen, err := randstate.Normalize(randstate.ParseSeed(a.config.RandomState))
	if err != nil {
		return fmt.Errorf("invalid random state: %w", err)
	}

	opts := plan.Options{
		DatasetPatterns: a.config.DatasetPatterns,
		SolverPatterns:  a.config.SolverPatterns,
	}
	if a.config.RandomState != "" {
		opts.RandomState = gen
	}

	p := plan.Build(b, opts)
	a.logger.Info("Run plan built.",
		"datasets", len(p.Datasets),
		"solvers", len(p.Solvers),
		"runs", len(p.Runnable()),
		"skipped", len(p.Skipped()))
	for _, pair := range p.Skipped() {
		a.logger.Debug("Skipping incompatible pair.", "solver", pair.Solver.Name, "dataset", pair.Dataset.Name)
	}

	if err := plan.Render(a.outW, p); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
