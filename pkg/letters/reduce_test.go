package letters

import (
	"strings"
	"testing"

	"github.com/matzehuels/fivewords/pkg/errors"
)

func TestReduceStats(t *testing.T) {
	input := strings.Join([]string{
		"a",
		"about",
		"sassy", // repeated letter
		"fjord",
		"abc1e", // invalid
		"sprung",
		"bouta", // anagram of about
		"strength",
		"gucks",
	}, "\n") + "\n"

	s, err := Reduce([]byte(input), 0)
	if err != nil {
		t.Fatalf("Reduce() error: %v", err)
	}

	want := Stats{Total: 9, Length: 6, Repeated: 1, Invalid: 1, Duplicates: 1, Unique: 3}
	if got := s.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	words := []string{"about", "fjord", "gucks"}
	if s.Len() != len(words) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(words))
	}
	for i, w := range words {
		if s.Word(i) != w {
			t.Errorf("Word(%d) = %q, want %q", i, s.Word(i), w)
		}
		if s.Mask(i) != MustParse(w) {
			t.Errorf("Mask(%d) mismatch for %q", i, w)
		}
	}
}

func TestReduceKeepsFirstAnagram(t *testing.T) {
	for _, order := range [][]string{
		{"pursy", "syrup", "fjord"},
		{"syrup", "pursy", "fjord"},
	} {
		s, err := FromWords(order, 0)
		if err != nil {
			t.Fatalf("FromWords(%v) error: %v", order, err)
		}
		if s.Len() != 2 {
			t.Fatalf("FromWords(%v) Len() = %d, want 2", order, s.Len())
		}
		if s.Word(0) != order[0] {
			t.Errorf("FromWords(%v) kept %q, want first occurrence %q", order, s.Word(0), order[0])
		}
		if s.Stats().Duplicates != 1 {
			t.Errorf("FromWords(%v) Duplicates = %d, want 1", order, s.Stats().Duplicates)
		}
	}
}

func TestReduceCandidateInvariants(t *testing.T) {
	input := "about\nbouta\nfjord\ngucks\nnymph\nvibex\nwaltz\nzlawt\nsassy\nbrick\nglent\n"
	s, err := Reduce([]byte(input), 0)
	if err != nil {
		t.Fatalf("Reduce() error: %v", err)
	}

	seen := map[Mask]string{}
	for i, c := range s.Candidates() {
		if c.Mask.Count() != WordLength {
			t.Errorf("candidate %d (%s) has %d letters", i, c.Word, c.Mask.Count())
		}
		if prev, ok := seen[c.Mask]; ok {
			t.Errorf("candidates %q and %q share a mask", prev, c.Word)
		}
		seen[c.Mask] = c.Word
		if s.Masks()[i] != c.Mask {
			t.Errorf("Masks()[%d] does not match candidate", i)
		}
	}
}

func TestReduceCRLF(t *testing.T) {
	lf, err := Reduce([]byte("fjord\ngucks\nsassy\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	crlf, err := Reduce([]byte("fjord\r\ngucks\r\nsassy\r\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if lf.Stats() != crlf.Stats() {
		t.Errorf("CRLF stats %+v differ from LF stats %+v", crlf.Stats(), lf.Stats())
	}
	for i := range lf.Len() {
		if lf.Word(i) != crlf.Word(i) {
			t.Errorf("Word(%d): CRLF %q, LF %q", i, crlf.Word(i), lf.Word(i))
		}
	}
}

func TestReduceNoTrailingNewline(t *testing.T) {
	s, err := Reduce([]byte("fjord\ngucks"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Stats().Total != 2 {
		t.Errorf("Len() = %d, Total = %d, want 2 and 2", s.Len(), s.Stats().Total)
	}
}

func TestReduceEmpty(t *testing.T) {
	s, err := Reduce(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 || s.Stats() != (Stats{}) {
		t.Errorf("empty input produced %d candidates, stats %+v", s.Len(), s.Stats())
	}
}

func TestReduceLowercasesWords(t *testing.T) {
	s, err := Reduce([]byte("FJORD\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Word(0) != "fjord" {
		t.Errorf("Word(0) = %q, want %q", s.Word(0), "fjord")
	}
}

func TestReduceCapacity(t *testing.T) {
	_, err := Reduce([]byte("fjord\ngucks\nnymph\n"), 2)
	if err == nil {
		t.Fatal("Reduce() should fail when candidates exceed the limit")
	}
	if !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeCapacityExceeded)
	}

	// Duplicates do not count against the limit.
	s, err := Reduce([]byte("fjord\ngucks\ndforj\nsassy\n"), 2)
	if err != nil {
		t.Fatalf("Reduce() error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
