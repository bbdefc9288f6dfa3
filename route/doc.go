// Package route enumerates the arrow orderings that move a pointer between
// two buttons and filters out those that would pass over a keypad's gap.
//
// What:
//
//   - Candidates(d): the orderings realizing a displacement. A zero move has
//     one empty candidate, a single-axis move has one, and a move along both
//     axes has two: every horizontal press first, then every vertical press
//     first.
//   - Feasible(l, start, c): walks c from the absolute start and rejects it
//     if any intermediate position is the gap or off the grid.
//   - Viable(l, start, end): Candidates filtered by Feasible, in order.
//   - Candidate.Keys, Runs, Stops: the labels typed one layer up, the blocks
//     of repeated arrows, and the distinct buttons pressed to type them.
//
// Why two orderings only:
//
//	Interleaving the axes never shortens the sequence typed one layer up,
//	because every change of direction costs the layer above a pointer move.
//	It only adds chances to cross the gap.
//
// Complexity (n = |DRow| + |DCol|):
//
//   - Candidates: O(n) time and memory.
//   - Feasible:   O(n) time, O(1) memory.
//   - Viable:     O(n) time, at most two candidates returned.
//
// Errors:
//
//   - ErrNotAButton: start or end is the gap or lies outside the layout.
//   - keypad.ErrUnknownButton: Stops was given a keypad without arrow buttons.
package route
