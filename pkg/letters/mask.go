package letters

import (
	"math/bits"
	"strings"
)

// WordLength is the number of letters in every candidate word.
const WordLength = 5

// Alphabet is the number of distinct letters a mask can hold.
const Alphabet = 26

// FullMask has every letter of the alphabet set.
const FullMask Mask = 1<<Alphabet - 1

// Mask is a 26-bit letter-presence set.
type Mask uint32

// Parse converts a word into its letter mask.
// It reports false when the word is not exactly five ASCII letters or repeats
// a letter. Upper-case letters are folded to lower case.
func Parse(word []byte) (Mask, bool) {
	m, v := classify(word)
	return m, v == verdictOK
}

// MustParse is like Parse but panics on a rejected word. Intended for tests
// and literals.
func MustParse(word string) Mask {
	m, ok := Parse([]byte(word))
	if !ok {
		panic("letters: not a five-letter word without repeats: " + word)
	}
	return m
}

// Count returns the number of letters in the set.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Disjoint reports whether m and o share no letter.
func (m Mask) Disjoint(o Mask) bool { return m&o == 0 }

// Union returns the letters present in either set.
func (m Mask) Union(o Mask) Mask { return m | o }

// Has reports whether letter (a-z) is in the set.
func (m Mask) Has(letter byte) bool {
	if letter < 'a' || letter > 'z' {
		return false
	}
	return m&(1<<(letter-'a')) != 0
}

// Missing returns the letters of the alphabet not in m.
func (m Mask) Missing() Mask { return ^m & FullMask }

// String lists the letters of the set in alphabetical order.
func (m Mask) String() string {
	var b strings.Builder
	b.Grow(m.Count())
	for i := range Alphabet {
		if m&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

type verdict int

const (
	verdictOK verdict = iota
	verdictWrongLength
	verdictInvalid
	verdictRepeated
)

func classify(word []byte) (Mask, verdict) {
	if len(word) != WordLength {
		return 0, verdictWrongLength
	}
	var m Mask
	for _, c := range word {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		default:
			return 0, verdictInvalid
		}
		m |= 1 << (c - 'a')
	}
	if m.Count() != WordLength {
		return m, verdictRepeated
	}
	return m, verdictOK
}
