package sequencer_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/sequencer"
)

// ExampleSolve scores the classic five codes at both configured depths.
func ExampleSolve() {
	for _, depth := range []int{2, 25} {
		total, err := sequencer.Solve(strings.NewReader("029A\n980A\n179A\n456A\n379A\n"), depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("depth %d: %d\n", depth, total)
	}
	// Output:
	// depth 2: 126384
	// depth 25: 154115708116294
}

// ExampleScorer_Score prints the per-code breakdown.
func ExampleScorer_Score() {
	codes, _ := sequencer.ParseCodes(strings.NewReader("029A\n980A\n"))
	s, _ := sequencer.NewScorer(2)
	rep, err := s.Score(codes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range rep.Entries {
		fmt.Printf("%s: %d × %d = %d\n", e.Code, e.Length, e.Code.Value, e.Complexity)
	}
	fmt.Println("total:", rep.Total)
	// Output:
	// 029A: 68 × 29 = 1972
	// 980A: 60 × 980 = 58800
	// total: 60772
}
