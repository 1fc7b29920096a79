// Package neighbors builds the letter-disjoint neighbor graph over a
// candidate set.
//
// Row i of the graph lists, in ascending order, every candidate j > i whose
// mask shares no letter with candidate i. Edges only point to greater
// indices, so the graph is acyclic and any path through it visits candidates
// in strictly ascending order. A depth-first walk over it therefore produces
// each unordered word set exactly once.
package neighbors

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/fivewords/internal/workers"
	fwerrors "github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/letters"
)

// DefaultMaxNeighbors bounds a single row when no limit is given.
// A full English dictionary peaks at roughly 2400 neighbors per word.
const DefaultMaxNeighbors = 4096

var (
	// ErrEdgeNotAscending is returned by [Graph.Validate] when a row points
	// to an index that is not greater than its own.
	ErrEdgeNotAscending = errors.New("edge does not point to a greater index")

	// ErrEdgeNotDisjoint is returned by [Graph.Validate] when an edge joins
	// two candidates that share a letter.
	ErrEdgeNotDisjoint = errors.New("edge joins overlapping masks")

	// ErrRowNotSorted is returned by [Graph.Validate] when a row is not in
	// ascending order.
	ErrRowNotSorted = errors.New("row is not sorted")

	// ErrRowIncomplete is returned by [Graph.Validate] when a row misses a
	// disjoint greater-index candidate.
	ErrRowIncomplete = errors.New("row is missing neighbors")
)

// Options configures Build.
type Options struct {
	// Workers is the pool size; 0 uses every available processing unit.
	Workers int
	// MaxNeighbors caps the length of one row; 0 selects DefaultMaxNeighbors.
	MaxNeighbors int
}

// Graph is the ascending-only adjacency structure. It is immutable after
// Build and safe for concurrent readers.
type Graph struct {
	rows [][]int32
}

// Build computes the neighbor rows for masks.
//
// Rows are independent, so they are computed by a fixed pool of workers,
// each owning a stripe of rows. A row that would exceed MaxNeighbors aborts
// the build with a CAPACITY_EXCEEDED error instead of being truncated.
func Build(ctx context.Context, masks []letters.Mask, opts Options) (*Graph, error) {
	maxNeighbors := opts.MaxNeighbors
	if maxNeighbors <= 0 {
		maxNeighbors = DefaultMaxNeighbors
	}
	n := len(masks)
	g := &Graph{rows: make([][]int32, n)}
	if n == 0 {
		return g, nil
	}

	w := min(workers.Count(opts.Workers), n)
	err := workers.Stripe(ctx, w, func(ctx context.Context, worker int) error {
		scratch := make([]int32, 0, maxNeighbors)
		for i := worker; i < n; i += w {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := buildRow(masks, i, scratch[:0], maxNeighbors)
			if err != nil {
				return err
			}
			g.rows[i] = append([]int32(nil), row...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func buildRow(masks []letters.Mask, i int, row []int32, limit int) ([]int32, error) {
	mi := masks[i]
	for j := i + 1; j < len(masks); j++ {
		if mi&masks[j] != 0 {
			continue
		}
		if len(row) == limit {
			return nil, fwerrors.Capacity(fmt.Sprintf("neighbors of candidate %d", i), countFrom(masks, i), limit)
		}
		row = append(row, int32(j))
	}
	return row, nil
}

// countFrom returns the full neighbor count of row i, for error reporting.
func countFrom(masks []letters.Mask, i int) int {
	n := 0
	for j := i + 1; j < len(masks); j++ {
		if masks[i]&masks[j] == 0 {
			n++
		}
	}
	return n
}

// Len returns the number of rows (candidates).
func (g *Graph) Len() int { return len(g.rows) }

// Neighbors returns row i. The slice is shared and must not be modified.
func (g *Graph) Neighbors(i int) []int32 { return g.rows[i] }

// Edges returns the total number of edges.
func (g *Graph) Edges() int {
	n := 0
	for _, r := range g.rows {
		n += len(r)
	}
	return n
}

// MaxDegree returns the length of the longest row and its index.
// It returns (0, -1) for an empty graph.
func (g *Graph) MaxDegree() (degree, row int) {
	row = -1
	for i, r := range g.rows {
		if len(r) > degree || row < 0 {
			degree, row = len(r), i
		}
	}
	return degree, row
}

// Validate checks the structural invariants against masks: every edge points
// to a greater index, joins disjoint masks, rows are ascending, and no
// disjoint pair is missing. It is quadratic in the number of candidates.
func (g *Graph) Validate(masks []letters.Mask) error {
	if len(masks) != len(g.rows) {
		return fmt.Errorf("graph has %d rows for %d masks", len(g.rows), len(masks))
	}
	for i, r := range g.rows {
		for k, j := range r {
			if int(j) <= i || int(j) >= len(masks) {
				return fmt.Errorf("%w: %d -> %d", ErrEdgeNotAscending, i, j)
			}
			if k > 0 && r[k-1] >= j {
				return fmt.Errorf("%w: row %d at position %d", ErrRowNotSorted, i, k)
			}
			if !masks[i].Disjoint(masks[j]) {
				return fmt.Errorf("%w: %d -> %d", ErrEdgeNotDisjoint, i, j)
			}
		}
		if want := countFrom(masks, i); want != len(r) {
			return fmt.Errorf("%w: row %d has %d, want %d", ErrRowIncomplete, i, len(r), want)
		}
	}
	return nil
}
