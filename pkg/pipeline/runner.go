package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/fivewords/pkg/buildinfo"
	"github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/letters"
	"github.com/matzehuels/fivewords/pkg/neighbors"
	"github.com/matzehuels/fivewords/pkg/observability"
	"github.com/matzehuels/fivewords/pkg/report"
	"github.com/matzehuels/fivewords/pkg/search"
	"github.com/matzehuels/fivewords/pkg/wordlist"
)

// Runner executes runs and logs one line per completed stage.
//
// The Runner holds no run state; multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs every stage on the word list named by opts.Source.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	res, err := r.Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.finish(ctx, res, opts, start)
}

// ExecuteBuffer runs every stage after load on an in-memory word list.
func (r *Runner) ExecuteBuffer(ctx context.Context, buf []byte, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	res, err := r.PrepareBuffer(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	return r.finish(ctx, res, opts, start)
}

// Prepare loads the word list, reduces it and builds the neighbor graph.
func (r *Runner) Prepare(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	var buf []byte
	d, err := r.stage(ctx, observability.StageLoad, 0, func() (int, error) {
		var err error
		buf, err = wordlist.Load(opts.Source, opts.MaxInputBytes)
		return len(buf), err
	})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.Logger.Info("loaded word list",
		"path", opts.Source,
		"bytes", len(buf),
		"duration", d)

	res, err := r.PrepareBuffer(ctx, buf, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = d
	return res, nil
}

// PrepareBuffer reduces buf and builds the neighbor graph.
func (r *Runner) PrepareBuffer(ctx context.Context, buf []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if size := int64(len(buf)); size > opts.MaxInputBytes {
		return nil, errors.New(errors.ErrCodeInputTooLarge,
			"word list is %d bytes, limit is %d", size, opts.MaxInputBytes)
	}

	res := &Result{RunID: uuid.NewString()}
	res.Stats.InputBytes = len(buf)
	r.Logger.Debug("starting run", "id", res.RunID, "workers", opts.Workers)

	var err error
	res.Stats.ReduceTime, err = r.stage(ctx, observability.StageReduce, len(buf), func() (int, error) {
		var err error
		res.Set, err = letters.Reduce(buf, opts.MaxCandidates)
		if err != nil {
			return 0, err
		}
		return res.Set.Len(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	st := res.Set.Stats()
	res.Stats.Candidates = st.Unique
	r.Logger.Info("reduced word list",
		"lines", st.Total,
		"five_letter", st.Length,
		"duplicates", st.Duplicates,
		"candidates", st.Unique,
		"duration", res.Stats.ReduceTime)
	r.Logger.Debug("parse details",
		"repeated", st.Repeated,
		"invalid", st.Invalid)

	res.Stats.BuildTime, err = r.stage(ctx, observability.StageBuild, res.Set.Len(), func() (int, error) {
		var err error
		res.Graph, err = neighbors.Build(ctx, res.Set.Masks(), neighbors.Options{
			Workers:      opts.Workers,
			MaxNeighbors: opts.MaxNeighbors,
		})
		if err != nil {
			return 0, err
		}
		return res.Graph.Edges(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	degree, row := res.Graph.MaxDegree()
	res.Stats.Edges = res.Graph.Edges()
	res.Stats.MaxDegree = degree
	r.Logger.Info("built neighbor graph",
		"edges", res.Stats.Edges,
		"duration", res.Stats.BuildTime)
	if row >= 0 {
		r.Logger.Debug("widest neighbor row", "word", res.Set.Word(row), "degree", degree)
	}

	return res, nil
}

// finish runs search and aggregate on a prepared result.
func (r *Runner) finish(ctx context.Context, res *Result, opts Options, start time.Time) (*Result, error) {
	var err error
	res.Stats.SearchTime, err = r.stage(ctx, observability.StageSearch, res.Set.Len(), func() (int, error) {
		var err error
		res.Search, err = search.Run(ctx, res.Set.Masks(), res.Graph, search.Options{
			Workers:      opts.Workers,
			MaxSolutions: opts.MaxSolutions,
		})
		if err != nil {
			return 0, err
		}
		return res.Search.Total(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	res.Stats.Comparisons = res.Search.Comparisons()
	r.Logger.Info("searched neighbor graph",
		"solutions", res.Search.Total(),
		"comparisons", res.Stats.Comparisons,
		"duration", res.Stats.SearchTime)

	res.Stats.AggregateTime, _ = r.stage(ctx, observability.StageAggregate, res.Search.Total(), func() (int, error) {
		res.Report = report.Aggregate(res.Search, res.Set)
		return res.Report.Total, nil
	})

	res.Stats.Elapsed = time.Since(start)
	res.Report.Run = report.RunInfo{
		ID:         res.RunID,
		Source:     opts.Source,
		Workers:    opts.Workers,
		Candidates: res.Stats.Candidates,
		Edges:      res.Stats.Edges,
		Parse:      res.Set.Stats(),
		Elapsed:    res.Stats.Elapsed,
		Build:      buildinfo.Current(),
	}
	r.Logger.Debug("aggregated report",
		"workers_with_solutions", res.Report.ActiveWorkers,
		"duration", res.Stats.AggregateTime)

	return res, nil
}

// stage times fn and reports it to the registered stage hooks.
// fn returns the stage's output size.
func (r *Runner) stage(ctx context.Context, name observability.StageName, input int, fn func() (int, error)) (time.Duration, error) {
	hooks := observability.Stage()
	hooks.OnStageStart(ctx, name, input)
	start := time.Now()
	size, err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, name, size, d, err)
	return d, err
}
