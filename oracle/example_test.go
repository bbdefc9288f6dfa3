package oracle_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/oracle"
)

// ExampleOracle_PressCost shows how one terminal press grows with depth.
func ExampleOracle_PressCost() {
	for _, depth := range []int{0, 1, 2, 25} {
		o, err := oracle.New(depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		c, err := o.PressCost(o.TopLayer(), 'A', '0')
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("depth %2d: %d\n", depth, c)
	}
	// Output:
	// depth  0: 2
	// depth  1: 8
	// depth  2: 18
	// depth 25: 22411052532
}

// ExampleOracle_Expand prints one shortest sequence for a single press.
func ExampleOracle_Expand() {
	o, _ := oracle.New(1)
	term := keypad.Terminal()
	one, _ := term.Position('1')
	keys, err := o.Expand(o.TopLayer(), term.Activate(), one)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(keys, len(keys))
	// Output:
	// <Av<AA>>^A 10
}
