// Package keypad describes the two button grids used by a keypad chain and the
// geometry needed to move a pointer between their buttons.
//
// What:
//
//   - Layout wraps a rectangular grid of buttons with exactly one gap cell.
//   - Terminal() is the 4×3 digit keypad (gap at row 3, column 0).
//   - Directional() is the 2×3 arrow keypad (gap at row 0, column 0).
//   - Position and Displacement give absolute and relative button coordinates.
//   - Chain lays out one Layout per layer, directional everywhere except the
//     outermost layer, which is the terminal keypad.
//
// Layouts:
//
//	Terminal        Directional
//	+---+---+---+       +---+---+
//	| 7 | 8 | 9 |       | ^ | A |
//	+---+---+---+   +---+---+---+
//	| 4 | 5 | 6 |   | < | v | > |
//	+---+---+---+   +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Complexity:
//
//   - NewLayout: O(W×H) time and memory.
//   - Position, ButtonAt, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyLayout: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGapCount: the grid does not contain exactly one gap cell.
//   - ErrDuplicateButton: a button label appears twice.
//   - ErrUnknownButton: a label is not present on the layout.
//   - ErrNegativeDepth: Chain was asked for a negative depth.
package keypad
