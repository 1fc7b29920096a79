// Package pkg provides the core libraries for fivewords.
//
// # Overview
//
// fivewords searches a word list for every set of five five-letter words that
// together use 25 distinct letters. The pkg directory is organized by stage:
//
//  1. [wordlist] - Bounded loading of plain, gzip or zstd word lists
//  2. [letters] - Letter masks and reduction to unique candidates
//  3. [neighbors] - The ascending neighbor graph of disjoint candidates
//  4. [search] - Parallel depth-five search with per-worker buffers
//  5. [report] - Aggregation and text, JSON and DOT/SVG output
//  6. [pipeline] - Orchestration (load → reduce → build → search → aggregate)
//
// # Architecture
//
// The typical data flow through fivewords:
//
//	word list file
//	      ↓
//	 [wordlist] package (bounded read, decompression)
//	      ↓
//	 [letters] package (masks, anagram collapse)
//	      ↓
//	 [neighbors] package (rows of later disjoint candidates)
//	      ↓
//	 [search] package (pruned five-deep walk per worker)
//	      ↓
//	 [report] package (text, JSON, DOT, SVG)
//
// # Quick Start
//
// Run the whole pipeline on a word list:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/matzehuels/fivewords/pkg/pipeline"
//	)
//
//	res, err := pipeline.NewRunner(nil).Execute(context.Background(), pipeline.Options{
//	    Source:  "words_alpha.txt",
//	    Workers: 8,
//	})
//	if err != nil {
//	    return err
//	}
//	res.Report.WriteText(os.Stdout)
//
// Or drive the stages by hand:
//
//	set, _ := letters.FromWords(words, 0)
//	g, _ := neighbors.Build(ctx, set.Masks(), neighbors.Options{Workers: 4})
//	found, _ := search.Run(ctx, set.Masks(), g, search.Options{Workers: 4})
//	rep := report.Aggregate(found, set)
//
// # Supporting Packages
//
// [errors] defines coded errors (INPUT_TOO_LARGE, CAPACITY_EXCEEDED, ...) that
// every stage returns. [observability] exposes stage and search hooks for
// metrics and tracing. [buildinfo] carries version information injected at
// build time.
//
// [wordlist]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/wordlist
// [letters]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/letters
// [neighbors]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/neighbors
// [search]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/search
// [report]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fivewords/pkg/buildinfo
package pkg
