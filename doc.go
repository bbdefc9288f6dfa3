// Package keypadchain computes shortest keystroke sequences through chains of
// keypad robots: a human types on a directional keypad, a robot reads it and
// types on the next directional keypad, and so on until the last robot types
// a code on a terminal (digit) keypad.
//
// What is in here?
//
//	keypad/     terminal and directional layouts, positions, displacements
//	route/      the two arrow orderings per move, and the gap filter
//	oracle/     memoized cost(layer, start, end) over the whole chain
//	sequencer/  code parsing, per-code lengths and the puzzle score
//	simulate/   explicit breadth-first search, used to cross-check oracle
//	cmd/keypadchain  CLI: solve, validate, explain
//
// Quick picture of a depth-2 chain:
//
//	human → [dir] → robot → [dir] → robot → [dir] → robot → [789/456/123/ 0A]
//	layer 0         layer 1         layer 2         layer 3 (terminal)
//
// Deep chains (25 robots and more) are answered in time linear in depth
// because each press at layer k only depends on (k, start, end): every lower
// pointer is back on its 'A' key between presses.
//
//	go install github.com/katalvlaran/keypadchain/cmd/keypadchain@latest
package keypadchain
