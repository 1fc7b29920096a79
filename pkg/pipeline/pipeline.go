// Package pipeline runs a complete solve: load → reduce → build → search →
// aggregate.
//
// The CLI and tests both go through the Runner, so defaults, validation,
// stage logging and observability events are the same for every entry
// point.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "words_alpha.txt",
//	    Workers: 8,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Report.WriteText(os.Stdout)
//
// Stages can also be run on their own. Prepare stops after the neighbor
// graph, which is what the stats command needs:
//
//	res, err := runner.Prepare(ctx, opts)
//	fmt.Println(res.Graph.Edges())
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fivewords/internal/workers"
	"github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/letters"
	"github.com/matzehuels/fivewords/pkg/neighbors"
	"github.com/matzehuels/fivewords/pkg/report"
	"github.com/matzehuels/fivewords/pkg/search"
	"github.com/matzehuels/fivewords/pkg/wordlist"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and tests
// =============================================================================

const (
	// DefaultMaxInputBytes bounds the word list size (8 MiB).
	DefaultMaxInputBytes = wordlist.DefaultMaxBytes

	// DefaultMaxCandidates bounds the number of unique candidates.
	DefaultMaxCandidates = letters.DefaultMaxCandidates

	// DefaultMaxNeighbors bounds a single neighbor row.
	DefaultMaxNeighbors = neighbors.DefaultMaxNeighbors

	// DefaultMaxSolutions bounds the solutions of a single worker.
	DefaultMaxSolutions = search.DefaultMaxSolutions

	// DefaultSource is the word list read when none is named.
	DefaultSource = wordlist.DefaultPath
)

// Format constants for report output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats lists the supported report formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatDOT, FormatSVG}

// ValidateFormat checks that format is a supported report format.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures a run. Zero values select the defaults above.
type Options struct {
	Source        string `json:"source,omitempty"`
	Workers       int    `json:"workers,omitempty"`
	MaxInputBytes int64  `json:"max_input_bytes,omitempty"`
	MaxCandidates int    `json:"max_candidates,omitempty"`
	MaxNeighbors  int    `json:"max_neighbors,omitempty"`
	MaxSolutions  int    `json:"max_solutions,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults rejects unusable values with INVALID_CONFIG and
// fills in defaults. Workers is resolved to a concrete pool size.
// Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Source == "" {
		o.Source = DefaultSource
	}
	if err := errors.ValidatePath(o.Source); err != nil {
		return err
	}
	if err := errors.ValidateWorkers(o.Workers); err != nil {
		return err
	}
	if o.MaxInputBytes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_input_bytes must not be negative (got %d)", o.MaxInputBytes)
	}
	for _, l := range []struct {
		name  string
		value int
	}{
		{"max_candidates", o.MaxCandidates},
		{"max_neighbors", o.MaxNeighbors},
		{"max_solutions", o.MaxSolutions},
	} {
		if err := errors.ValidateLimit(l.name, l.value); err != nil {
			return err
		}
	}

	o.Workers = workers.Count(o.Workers)
	if o.MaxInputBytes == 0 {
		o.MaxInputBytes = DefaultMaxInputBytes
	}
	if o.MaxCandidates == 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	if o.MaxNeighbors == 0 {
		o.MaxNeighbors = DefaultMaxNeighbors
	}
	if o.MaxSolutions == 0 {
		o.MaxSolutions = DefaultMaxSolutions
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a run. Fields for stages that did not run
// are nil.
type Result struct {
	// RunID identifies the run in logs and JSON output.
	RunID string

	Set    *letters.Set
	Graph  *neighbors.Graph
	Search *search.Result
	Report *report.Report

	Stats Stats
}

// Stats contains timing and size information.
type Stats struct {
	InputBytes  int
	Candidates  int
	Edges       int
	MaxDegree   int
	Comparisons uint64

	LoadTime      time.Duration
	ReduceTime    time.Duration
	BuildTime     time.Duration
	SearchTime    time.Duration
	AggregateTime time.Duration
	Elapsed       time.Duration // wall time of the whole run
}
