// Package observability provides hooks for instrumenting solver runs.
//
// The solver itself depends on no metrics or tracing backend. A program that
// wants numbers registers hooks once at startup and receives an event at the
// start and end of every pipeline stage and once per finished search worker.
//
// # Usage
//
//	func main() {
//	    observability.SetStageHooks(&myStageHooks{})
//	    // ... run application
//	}
//
// Library code emits events:
//
//	observability.Stage().OnStageStart(ctx, observability.StageBuild, n)
//	// ... build the graph ...
//	observability.Stage().OnStageComplete(ctx, observability.StageBuild, edges, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// StageName identifies one step of a run.
type StageName string

// Stages of a run, in execution order.
const (
	StageLoad      StageName = "load"
	StageReduce    StageName = "reduce"
	StageBuild     StageName = "build"
	StageSearch    StageName = "search"
	StageAggregate StageName = "aggregate"
)

// Stages lists every stage in execution order.
var Stages = []StageName{StageLoad, StageReduce, StageBuild, StageSearch, StageAggregate}

// StageHooks receives events from the solver pipeline.
//
// size is a stage-specific item count: bytes for load, candidates for
// reduce, edges for build, solutions for search and aggregate.
type StageHooks interface {
	OnStageStart(ctx context.Context, stage StageName, input int)
	OnStageComplete(ctx context.Context, stage StageName, size int, duration time.Duration, err error)
}

// SearchHooks receives per-worker events from the search stage.
type SearchHooks interface {
	// OnWorkerDone is called once per worker after its last root.
	OnWorkerDone(ctx context.Context, worker, roots, solutions int, comparisons uint64)
}

// NoopStageHooks is a no-op implementation of StageHooks.
type NoopStageHooks struct{}

func (NoopStageHooks) OnStageStart(context.Context, StageName, int)                            {}
func (NoopStageHooks) OnStageComplete(context.Context, StageName, int, time.Duration, error) {}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnWorkerDone(context.Context, int, int, int, uint64) {}

var (
	stageHooks  StageHooks  = NoopStageHooks{}
	searchHooks SearchHooks = NoopSearchHooks{}
	hooksMu     sync.RWMutex
)

// SetStageHooks registers custom stage hooks. Nil is ignored.
func SetStageHooks(h StageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stageHooks = h
	}
}

// SetSearchHooks registers custom search hooks. Nil is ignored.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Stage returns the registered stage hooks.
func Stage() StageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stageHooks
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stageHooks = NoopStageHooks{}
	searchHooks = NoopSearchHooks{}
}
