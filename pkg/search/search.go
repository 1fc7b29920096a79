package search

import (
	"context"
	"fmt"

	"github.com/matzehuels/fivewords/internal/workers"
	"github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/letters"
	"github.com/matzehuels/fivewords/pkg/neighbors"
	"github.com/matzehuels/fivewords/pkg/observability"
)

// Depth is the number of words in a solution.
const Depth = 5

// DefaultMaxSolutions is the per-worker solution capacity when none is given.
const DefaultMaxSolutions = 1024

// Solution is an ascending tuple of candidate indices.
type Solution [Depth]int32

// Options configures Run.
type Options struct {
	// Workers is the pool size; 0 uses every available processing unit.
	Workers int
	// MaxSolutions caps the solutions a single worker may record;
	// 0 selects DefaultMaxSolutions.
	MaxSolutions int
}

// WorkerResult is the private output of one worker.
type WorkerResult struct {
	Worker      int
	Roots       int        // root words walked
	Solutions   []Solution // in discovery order
	Comparisons uint64     // mask tests performed
}

// Result holds every worker's output, indexed by worker.
type Result struct {
	Workers []WorkerResult
}

// Total returns the number of solutions across all workers.
func (r *Result) Total() int {
	n := 0
	for i := range r.Workers {
		n += len(r.Workers[i].Solutions)
	}
	return n
}

// Comparisons returns the mask tests performed across all workers.
func (r *Result) Comparisons() uint64 {
	var n uint64
	for i := range r.Workers {
		n += r.Workers[i].Comparisons
	}
	return n
}

// ActiveWorkers returns the number of workers that found at least one
// solution.
func (r *Result) ActiveWorkers() int {
	n := 0
	for i := range r.Workers {
		if len(r.Workers[i].Solutions) > 0 {
			n++
		}
	}
	return n
}

// All returns every solution in worker order, then discovery order.
func (r *Result) All() []Solution {
	out := make([]Solution, 0, r.Total())
	for i := range r.Workers {
		out = append(out, r.Workers[i].Solutions...)
	}
	return out
}

// Run walks g from every root and collects all five-word solutions.
//
// masks must be the masks g was built from. A worker that finds more than
// MaxSolutions solutions fails the whole run with CAPACITY_EXCEEDED; the
// other workers stop before their next root. ctx is only consulted between
// roots.
func Run(ctx context.Context, masks []letters.Mask, g *neighbors.Graph, opts Options) (*Result, error) {
	if g.Len() != len(masks) {
		return nil, errors.New(errors.ErrCodeInternal, "graph has %d rows for %d masks", g.Len(), len(masks))
	}
	maxSolutions := opts.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = DefaultMaxSolutions
	}

	n := workers.Count(opts.Workers)
	res := &Result{Workers: make([]WorkerResult, n)}

	err := workers.Stripe(ctx, n, func(ctx context.Context, w int) error {
		wk := &walker{
			masks: masks,
			g:     g,
			out:   &res.Workers[w],
			limit: maxSolutions,
		}
		wk.out.Worker = w
		wk.out.Solutions = make([]Solution, 0, maxSolutions)

		for w0 := w; w0 < len(masks); w0 += n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := wk.walk(int32(w0)); err != nil {
				return err
			}
			wk.out.Roots++
		}
		wk.out.Comparisons = wk.cmp
		observability.Search().OnWorkerDone(ctx, w, wk.out.Roots, len(wk.out.Solutions), wk.cmp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// walker is the per-worker search state. It is never shared.
type walker struct {
	masks []letters.Mask
	g     *neighbors.Graph
	out   *WorkerResult
	limit int
	cmp   uint64
}

func (wk *walker) walk(w0 int32) error {
	masks := wk.masks
	acc0 := masks[w0]

	for _, w1 := range wk.g.Neighbors(int(w0)) {
		wk.cmp++
		if masks[w1]&acc0 != 0 {
			continue
		}
		acc1 := acc0 | masks[w1]

		for _, w2 := range wk.g.Neighbors(int(w1)) {
			wk.cmp++
			if masks[w2]&acc1 != 0 {
				continue
			}
			acc2 := acc1 | masks[w2]

			for _, w3 := range wk.g.Neighbors(int(w2)) {
				wk.cmp++
				if masks[w3]&acc2 != 0 {
					continue
				}
				acc3 := acc2 | masks[w3]

				for _, w4 := range wk.g.Neighbors(int(w3)) {
					wk.cmp++
					if masks[w4]&acc3 != 0 {
						continue
					}
					if err := wk.emit(Solution{w0, w1, w2, w3, w4}); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (wk *walker) emit(s Solution) error {
	if len(wk.out.Solutions) == wk.limit {
		return errors.Capacity(fmt.Sprintf("solutions of worker %d", wk.out.Worker), wk.limit+1, wk.limit)
	}
	wk.out.Solutions = append(wk.out.Solutions, s)
	return nil
}
