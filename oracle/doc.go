// Package oracle provides the memoized recursive cost function at the heart
// of the keypad-chain solver.
//
// What
//
//   - Cost(layer, start, end): fewest human keystrokes that move the pointer
//     hovering over Layout(layer) from start to end and press end.
//   - Expand(layer, start, end): one key sequence achieving that minimum,
//     for shallow chains where the sequence is short enough to print.
//   - PressCost: Cost addressed by button labels.
//
// Why
//
//	Simulating every pointer of a deep chain is exponential in depth. Because
//	every lower pointer rests on the activate button between presses, the
//	cost of one press at layer k depends only on (k, start, end), and the
//	whole chain collapses into a small table filled top-down.
//
// Recurrence
//
//	cost(0, s, e) = 1
//	cost(k, s, e) = min over gap-free orderings c of s→e on Layout(k):
//	                  Σ cost(k-1, prev, stop) over the stops of c on Layout(k-1)
//	                + ExtraUnitPresses(s→e) × cost(k-1, A, A)
//
// Complexity (D = depth, B = buttons per keypad)
//
//   - Time:   O(D × B²) cache fills, each trying at most two orderings.
//   - Memory: O(D × B²) cache entries.
//
// Options
//
//   - DefaultOptions(): standard keypads, no-op hook, DefaultMaxExpand.
//   - WithDirectional(l), WithTerminal(l): substitute keypad layouts.
//   - WithOnMemo(fn): observe every new cache entry.
//   - WithMaxExpand(n): bound Expand output (0 < n <= MaxExpandCeiling).
//
// Errors
//
//   - ErrOptionViolation       invalid option.
//   - ErrLayerOutOfRange       layer not in [0, depth+1].
//   - route.ErrNotAButton      start or end is the gap or off the grid.
//   - ErrNoFeasibleCandidate   every ordering crosses the gap; a layout defect.
//   - ErrCostOverflow          count does not fit in int64.
//   - ErrExpandTooLong         Expand would exceed MaxExpand.
package oracle
