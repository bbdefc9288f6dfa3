// Package simulate explores the joint state of every pointer in a keypad
// chain breadth-first, one human key press per edge.
//
// What:
//
//   - Machine models depth directional robots plus the terminal robot: Step
//     applies one human press, pushing moves and activations up the chain.
//   - Search finds, for each target code, the fewest human presses that
//     make the terminal robot emit it, together with parent links so that
//     Result.Presses can rebuild one such sequence.
//   - Replay runs a given key sequence and returns what the terminal robot
//     typed, failing on the first illegal press.
//
// It exists to confirm the cost oracle at depths 0–3, not to answer deep
// configurations.
//
// Options:
//
//   - WithContext(ctx): cancellation and deadlines.
//   - WithMaxStates(n): abort with ErrStateLimit past n states (0 = no limit).
//   - WithOnVisit(fn): called per dequeued state; an error aborts the search.
//   - WithOnFound(fn): called when a code is first emitted.
//
// Complexity (D = depth, L = longest target code):
//
//   - Time and memory: O(5^D × 11 × L) states in the worst case, each
//     with five outgoing presses. States whose output is not a prefix of
//     some target are pruned.
//
// Errors:
//
//   - ErrNoCodes:          Search was given no targets.
//   - ErrOptionViolation:  invalid option.
//   - ErrStateLimit:       MaxStates exceeded.
//   - ErrNotFound:         Presses asked for a code the search did not reach.
//   - ErrBadKey:           Replay saw a label other than ^ v < > A.
//   - ErrIllegalMove:      Replay drove a pointer onto a gap or off its keypad.
//   - context errors and OnVisit errors propagate unchanged.
package simulate
