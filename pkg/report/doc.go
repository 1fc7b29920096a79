// Package report merges per-worker search output into the final answer.
//
// [Aggregate] resolves every index tuple to its words and totals the
// per-worker counts. It performs no validation: tuples that reach it are
// valid by construction. The [Report] can then be written as the classic
// text listing ([Report.WriteText]), as JSON ([Report.WriteJSON]), or as a
// Graphviz graph of the solutions ([ToDOT], [RenderSVG]).
//
// # Text format
//
//	Worker 0 found 2 solutions:
//	    bemix, clunk, grypt, vozhd, waqfs
//	    fjord, gucks, nymph, vibex, waltz
//	Solutions: 2
//	Workers with solutions: 1
package report
