// Package keypad defines core types and sentinel errors
// for keypad layouts and button geometry.
package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad operations.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must contain exactly one gap cell")
	// ErrDuplicateButton indicates a button label appears more than once.
	ErrDuplicateButton = errors.New("keypad: duplicate button label")
	// ErrUnknownButton indicates a label that is not on the layout.
	ErrUnknownButton = errors.New("keypad: unknown button")
	// ErrNegativeDepth indicates a chain depth below zero.
	ErrNegativeDepth = errors.New("keypad: chain depth cannot be negative")
)

const (
	// ActivateButton is the label of the press-the-pointed-button key.
	ActivateButton = 'A'
	// GapMark marks the missing cell in layout rows passed to NewLayout.
	GapMark = '.'
)

// Position identifies a button by row and column, (0,0) being top-left.
type Position struct {
	Row, Col int
}

// To returns the displacement that moves p onto q.
func (p Position) To(q Position) Displacement {
	return Displacement{DRow: q.Row - p.Row, DCol: q.Col - p.Col}
}

// Add returns p shifted by d.
func (p Position) Add(d Displacement) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Displacement is a signed row/column offset between two buttons.
// It carries no absolute information: whether a displacement can be walked
// without crossing a gap depends on where it starts.
type Displacement struct {
	DRow, DCol int
}

// IsZero reports whether d leaves the pointer where it is.
func (d Displacement) IsZero() bool {
	return d.DRow == 0 && d.DCol == 0
}

// Length is the Manhattan length of d.
// Complexity: O(1).
func (d Displacement) Length() int {
	return abs(d.DRow) + abs(d.DCol)
}

// ExtraUnitPresses counts the arrow presses beyond the first on each non-zero
// axis. Repeating an arrow does not move the pointer one layer up, so every
// such press costs exactly one human keystroke regardless of depth.
func (d Displacement) ExtraUnitPresses() int {
	extra := 0
	if n := abs(d.DRow); n > 1 {
		extra += n - 1
	}
	if n := abs(d.DCol); n > 1 {
		extra += n - 1
	}

	return extra
}

// Direction is one of the four arrow buttons.
type Direction int

const (
	// Up moves the pointer one row towards row 0.
	Up Direction = iota
	// Down moves the pointer one row away from row 0.
	Down
	// Left moves the pointer one column towards column 0.
	Left
	// Right moves the pointer one column away from column 0.
	Right
)

// Directions lists every arrow in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Offset returns the unit displacement produced by pressing d.
func (d Direction) Offset() Displacement {
	switch d {
	case Up:
		return Displacement{DRow: -1}
	case Down:
		return Displacement{DRow: 1}
	case Left:
		return Displacement{DCol: -1}
	case Right:
		return Displacement{DCol: 1}
	}
	panic(fmt.Sprintf("keypad: invalid direction %d", int(d)))
}

// Button returns the label of the arrow key for d.
func (d Direction) Button() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}
	panic(fmt.Sprintf("keypad: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	return string(d.Button())
}

// DirectionOf maps an arrow label back to its Direction.
func DirectionOf(button rune) (Direction, bool) {
	switch button {
	case '^':
		return Up, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	case '>':
		return Right, true
	}

	return 0, false
}

// abs returns |n|.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
