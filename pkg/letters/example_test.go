package letters_test

import (
	"fmt"

	"github.com/matzehuels/fivewords/pkg/letters"
)

func ExampleReduce() {
	s, _ := letters.Reduce([]byte("fjord\nsassy\ngucks\nfords\ngucks\n"), 0)
	for _, c := range s.Candidates() {
		fmt.Println(c.Word, c.Mask)
	}
	st := s.Stats()
	fmt.Println("total:", st.Total, "repeated:", st.Repeated, "duplicates:", st.Duplicates)
	// Output:
	// fjord dfjor
	// gucks cgksu
	// fords dfors
	// total: 5 repeated: 1 duplicates: 1
}

func ExampleMask_Disjoint() {
	a := letters.MustParse("fjord")
	b := letters.MustParse("gucks")
	fmt.Println(a.Disjoint(b), a.Union(b).Count())
	// Output:
	// true 10
}
