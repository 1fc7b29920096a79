// Package letters reduces a raw word list to the candidate set searched for
// letter-disjoint five-word combinations.
//
// # Letter masks
//
// A [Mask] is a 26-bit set: bit 0 is 'a', bit 25 is 'z'. A five-letter word
// with no repeated letter has exactly five bits set, so two words share no
// letter exactly when the AND of their masks is zero:
//
//	a, _ := letters.Parse([]byte("fjord"))
//	b, _ := letters.Parse([]byte("gucks"))
//	a.Disjoint(b) // true
//
// # Candidate sets
//
// [Reduce] scans a newline-delimited buffer in input order and keeps a word
// only if it has five letters, all distinct, and no earlier kept word has the
// same mask. Anagrams therefore collapse to the first one seen; the result is
// order dependent by design, so callers should feed a deterministically
// ordered (typically sorted) list. Rejected lines are tallied in [Stats] and
// never reported as errors.
package letters
