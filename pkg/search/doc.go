// Package search enumerates every set of five candidates whose letter masks
// are pairwise disjoint.
//
// The walk starts from every candidate w0 and follows the neighbor graph four
// levels deep. Each level keeps the union of the masks chosen so far, so a
// candidate that reuses any earlier letter is rejected with one AND and the
// rest of its subtree is never visited:
//
//	for w1 in neighbors(w0):  if mask[w1]&acc0 != 0 { continue }; acc1 = acc0|mask[w1]
//	  for w2 in neighbors(w1): if mask[w2]&acc1 != 0 { continue }; acc2 = acc1|mask[w2]
//	    ...
//
// Because the graph only links to greater indices, every solution is found
// once, as a strictly ascending index tuple.
//
// # Concurrency
//
// Root words are striped across a fixed pool of workers. A worker writes only
// to its own [WorkerResult], whose solution slice is allocated up front; the
// candidate masks and the graph are shared read-only. Results are read after
// every worker has returned.
package search
