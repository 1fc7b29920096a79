package neighbors_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/fivewords/pkg/letters"
	"github.com/matzehuels/fivewords/pkg/neighbors"
)

func ExampleBuild() {
	set, _ := letters.FromWords([]string{"fjord", "gucks", "drink", "nymph"}, 0)
	g, _ := neighbors.Build(context.Background(), set.Masks(), neighbors.Options{Workers: 2})
	for i := range g.Len() {
		fmt.Println(set.Word(i), g.Neighbors(i))
	}
	// Output:
	// fjord [1 3]
	// gucks [3]
	// drink []
	// nymph []
}
