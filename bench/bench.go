// Package bench drives a word list through every configured array and baseline.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xgzlucario/sortarr"
	"github.com/xgzlucario/sortarr/baseline"
	"github.com/xgzlucario/sortarr/option"
	"github.com/xgzlucario/sortarr/report"
	"github.com/xgzlucario/sortarr/wordsrc"
)

// Result summarises one run.
type Result struct {
	Label   string
	Len     int
	Cap     int
	Resizes int
	Elapsed time.Duration
}

// Runner
type Runner struct {
	opt     *option.Option
	runID   string
	printer *report.Printer
	sinks   []report.Sink
	logger  *slog.Logger
}

// NewRunner prints to w and also feeds every snapshot to sinks.
func NewRunner(opt *option.Option, w io.Writer, logger *slog.Logger, sinks ...report.Sink) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	printer := report.NewPrinter(w)

	return &Runner{
		opt:     opt,
		runID:   report.NewRunID(),
		printer: printer,
		sinks:   append([]report.Sink{printer}, sinks...),
		logger:  logger,
	}
}

// RunID identifies the records of this runner.
func (r *Runner) RunID() string {
	return r.runID
}

// Run inserts words, bounded by the configured limit, into each array and
// baseline in turn.
func (r *Runner) Run(ctx context.Context, words []string) ([]Result, error) {
	policies, err := r.opt.ParsePolicies()
	if err != nil {
		return nil, err
	}
	words = wordsrc.Limit(words, r.opt.Limit)

	r.logger.Info("bench: start", "run_id", r.runID, "words", len(words), "policies", len(policies))

	var results []Result
	backings := []bool{false}
	if r.opt.SliceBacking {
		backings = append(backings, true)
	}
	for _, slice := range backings {
		for i, p := range policies {
			res, err := r.runArray(ctx, title(i, p, slice), p, slice, words)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}

	if r.opt.Baseline {
		res, err := r.runSlice(ctx, words)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if r.opt.Skiplist {
		res, err := r.runSkiplist(ctx, words)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	r.logger.Info("bench: done", "run_id", r.runID, "runs", len(results))
	return results, nil
}

// title
func title(i int, p sortarr.Policy, slice bool) string {
	name := "Fibonacci"
	switch p.Kind() {
	case sortarr.Incremental:
		name = "Incremental Increase"
	case sortarr.Doubling:
		name = "Doubling"
	}
	backing := "Arrays"
	if slice {
		backing = "Lists"
	}
	return fmt.Sprintf("Strategy %c: %s (%s)", 'A'+i, name, backing)
}

// start checks ctx and prints the section header.
func (r *Runner) start(ctx context.Context, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.printer.Header(label)
}

func (r *Runner) finish(res Result, err error) (Result, error) {
	r.logger.Info("bench: run finished",
		"label", res.Label,
		"len", res.Len,
		"cap", res.Cap,
		"resizes", res.Resizes,
		"elapsed", res.Elapsed)
	return res, err
}

// runArray
func (r *Runner) runArray(ctx context.Context, label string, p sortarr.Policy, slice bool, words []string) (Result, error) {
	if err := r.start(ctx, label); err != nil {
		return Result{}, err
	}

	obs := report.NewObserver[string](r.runID, label, r.logger, r.sinks...)
	opts := []sortarr.Option[string]{sortarr.WithObserver[string](obs)}
	if slice {
		opts = append(opts, sortarr.WithSliceBacking[string]())
	}
	a, err := sortarr.New(p, opts...)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	for _, w := range words {
		a.Insert(w)
	}

	return r.finish(Result{
		Label:   label,
		Len:     a.Len(),
		Cap:     a.Cap(),
		Resizes: a.Resizes(),
		Elapsed: time.Since(start),
	}, obs.Err())
}

// runSlice
func (r *Runner) runSlice(ctx context.Context, words []string) (Result, error) {
	const label = "Plain Slice Implementation (Default Behavior)"
	if err := r.start(ctx, label); err != nil {
		return Result{}, err
	}

	obs := report.NewObserver[string](r.runID, label, r.logger, r.sinks...)
	s := baseline.NewSlice[string](obs)

	start := time.Now()
	for _, w := range words {
		s.Insert(w)
	}

	return r.finish(Result{
		Label:   label,
		Len:     s.Len(),
		Cap:     s.Len(),
		Elapsed: time.Since(start),
	}, obs.Err())
}

// runSkiplist
func (r *Runner) runSkiplist(ctx context.Context, words []string) (Result, error) {
	const label = "Arena Skiplist"
	if err := r.start(ctx, label); err != nil {
		return Result{}, err
	}

	obs := report.NewObserver[string](r.runID, label, r.logger, r.sinks...)
	s := baseline.NewSkiplist(r.opt.SkiplistArenaSize, obs)

	start := time.Now()
	for _, w := range words {
		if err := s.Insert(w); err != nil {
			return Result{Label: label}, err
		}
	}

	return r.finish(Result{
		Label:   label,
		Len:     s.Len(),
		Cap:     s.Len(),
		Resizes: s.Grows(),
		Elapsed: time.Since(start),
	}, obs.Err())
}
