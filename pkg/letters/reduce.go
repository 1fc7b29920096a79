package letters

import (
	"bytes"

	"github.com/matzehuels/fivewords/pkg/errors"
)

// DefaultMaxCandidates bounds the candidate set when no limit is given.
// A full English dictionary yields just under 6000 unique candidates.
const DefaultMaxCandidates = 8192

// Candidate is a word accepted into the search.
type Candidate struct {
	Word string
	Mask Mask
}

// Stats tallies what Reduce saw. It is diagnostic only.
type Stats struct {
	Total      int // lines scanned
	Length     int // lines of exactly five bytes
	Repeated   int // five letters but a letter appears twice
	Invalid    int // five bytes, not all letters
	Duplicates int // same mask as an earlier candidate
	Unique     int // accepted candidates
}

// Set is an anagram-free, ordered candidate list. It is read-only once built.
type Set struct {
	candidates []Candidate
	masks      []Mask
	stats      Stats
}

// Reduce builds the candidate set from a newline-delimited buffer.
//
// Lines are processed in order; a trailing '\r' is ignored so CRLF files parse
// the same as LF files. A word whose mask equals an already accepted mask is a
// duplicate and is dropped: the first occurrence wins.
//
// maxCandidates <= 0 selects DefaultMaxCandidates. Exceeding it returns a
// CAPACITY_EXCEEDED error.
func Reduce(buf []byte, maxCandidates int) (*Set, error) {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	s := &Set{}
	seen := make(map[Mask]struct{})

	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		s.stats.Total++

		m, v := classify(line)
		if v == verdictWrongLength {
			continue
		}
		s.stats.Length++

		switch v {
		case verdictInvalid:
			s.stats.Invalid++
			continue
		case verdictRepeated:
			s.stats.Repeated++
			continue
		}

		if _, dup := seen[m]; dup {
			s.stats.Duplicates++
			continue
		}
		if len(s.candidates) == maxCandidates {
			return nil, errors.Capacity("candidates", len(s.candidates)+1, maxCandidates)
		}
		seen[m] = struct{}{}
		s.candidates = append(s.candidates, Candidate{Word: string(bytes.ToLower(line)), Mask: m})
		s.masks = append(s.masks, m)
	}

	s.stats.Unique = len(s.candidates)
	return s, nil
}

// FromWords builds a set from already split words, applying the same rules as
// Reduce.
func FromWords(words []string, maxCandidates int) (*Set, error) {
	var b bytes.Buffer
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return Reduce(b.Bytes(), maxCandidates)
}

// Len returns the number of candidates.
func (s *Set) Len() int { return len(s.candidates) }

// Word returns the text of candidate i.
func (s *Set) Word(i int) string { return s.candidates[i].Word }

// Mask returns the letter mask of candidate i.
func (s *Set) Mask(i int) Mask { return s.masks[i] }

// Masks returns the masks indexed like the candidates.
// The slice is shared and must not be modified.
func (s *Set) Masks() []Mask { return s.masks }

// Candidates returns the candidates in acceptance order.
// The slice is shared and must not be modified.
func (s *Set) Candidates() []Candidate { return s.candidates }

// Stats returns the tallies collected while reducing.
func (s *Set) Stats() Stats { return s.stats }
