package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matzehuels/fivewords/pkg/buildinfo"
	"github.com/matzehuels/fivewords/pkg/letters"
	"github.com/matzehuels/fivewords/pkg/search"
)

// Words is one solution spelled out, in ascending candidate order.
type Words [search.Depth]string

// String joins the words with ", ".
func (w Words) String() string { return strings.Join(w[:], ", ") }

// Missing returns the one letter of the alphabet none of the words use.
func (w Words) Missing() string {
	var m letters.Mask
	for _, s := range w {
		mask, _ := letters.Parse([]byte(s))
		m |= mask
	}
	return m.Missing().String()
}

// WorkerReport is the contribution of one worker.
type WorkerReport struct {
	Worker      int     `json:"worker"`
	Roots       int     `json:"roots"`
	Comparisons uint64  `json:"comparisons"`
	Solutions   []Words `json:"solutions"`
}

// RunInfo describes the run that produced a report. It is filled in by the
// caller and only carried through to the outputs.
type RunInfo struct {
	ID         string         `json:"id,omitempty"`
	Source     string         `json:"source,omitempty"`
	Workers    int            `json:"workers"`
	Candidates int            `json:"candidates"`
	Edges      int            `json:"edges"`
	Parse      letters.Stats  `json:"parse"`
	Elapsed    time.Duration  `json:"elapsed_ns"`
	Build      buildinfo.Info `json:"build"`
}

// Report is the aggregated result of a search.
type Report struct {
	Run           RunInfo        `json:"run"`
	Total         int            `json:"total"`
	ActiveWorkers int            `json:"workers_with_solutions"`
	Workers       []WorkerReport `json:"per_worker"`
}

// Aggregate merges res into a report, resolving indices through set.
// res must come from a search over set's masks.
func Aggregate(res *search.Result, set *letters.Set) *Report {
	r := &Report{Workers: make([]WorkerReport, len(res.Workers))}
	for i, wr := range res.Workers {
		out := WorkerReport{
			Worker:      wr.Worker,
			Roots:       wr.Roots,
			Comparisons: wr.Comparisons,
			Solutions:   make([]Words, len(wr.Solutions)),
		}
		for k, s := range wr.Solutions {
			for d, idx := range s {
				out.Solutions[k][d] = set.Word(int(idx))
			}
		}
		r.Workers[i] = out
		r.Total += len(wr.Solutions)
		if len(wr.Solutions) > 0 {
			r.ActiveWorkers++
		}
	}
	return r
}

// All returns every solution in worker order, then discovery order.
func (r *Report) All() []Words {
	out := make([]Words, 0, r.Total)
	for _, w := range r.Workers {
		out = append(out, w.Solutions...)
	}
	return out
}

// WriteText writes the per-worker listing followed by the totals.
// Workers without solutions are omitted from the listing.
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	for _, wr := range r.Workers {
		if len(wr.Solutions) == 0 {
			continue
		}
		ew.printf("Worker %d found %d solutions:\n", wr.Worker, len(wr.Solutions))
		for _, s := range wr.Solutions {
			ew.printf("    %s\n", s)
		}
	}
	ew.printf("Solutions: %d\n", r.Total)
	ew.printf("Workers with solutions: %d\n", r.ActiveWorkers)
	return ew.err
}

// FormatElapsed renders d as "m:ss = s seconds (ms ms)".
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d = %d seconds (%d ms)", secs/60, secs%60, secs, ms)
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
