package keypad

import (
	"fmt"
	"unicode/utf8"
)

// Layout is an immutable grid of buttons with a single gap cell.
// buttons[r][c] holds the label at (r,c); the gap holds GapMark.
type Layout struct {
	name     string
	width    int
	height   int
	buttons  [][]rune
	gap      Position
	index    map[rune]Position
	activate Position
}

var (
	terminal    = mustLayout("terminal", []string{"789", "456", "123", ".0A"})
	directional = mustLayout("directional", []string{".^A", "<v>"})
)

// Terminal returns the shared 4×3 digit keypad.
func Terminal() *Layout { return terminal }

// Directional returns the shared 2×3 arrow keypad.
func Directional() *Layout { return directional }

// NewLayout builds a Layout from rows of labels, one rune per cell, with
// GapMark marking the missing cell. The rows are copied.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrGapCount or ErrDuplicateButton.
// Complexity: O(W×H).
func NewLayout(name string, rows []string) (*Layout, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyLayout
	}
	w := utf8.RuneCountInString(rows[0])
	l := &Layout{
		name:    name,
		width:   w,
		height:  len(rows),
		buttons: make([][]rune, len(rows)),
		index:   make(map[rune]Position, w*len(rows)),
	}
	gaps := 0
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, ErrNonRectangular
		}
		l.buttons[r] = cells
		for c, label := range cells {
			p := Position{Row: r, Col: c}
			if label == GapMark {
				gaps++
				l.gap = p
				continue
			}
			if _, dup := l.index[label]; dup {
				return nil, fmt.Errorf("%w: %q on %s", ErrDuplicateButton, label, name)
			}
			l.index[label] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: %s has %d", ErrGapCount, name, gaps)
	}
	if p, ok := l.index[ActivateButton]; ok {
		l.activate = p
	} else {
		return nil, fmt.Errorf("%w: %s has no %q key", ErrUnknownButton, name, ActivateButton)
	}

	return l, nil
}

func mustLayout(name string, rows []string) *Layout {
	l, err := NewLayout(name, rows)
	if err != nil {
		panic(err)
	}

	return l
}

// Name returns the layout's label, used in error messages.
func (l *Layout) Name() string { return l.name }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Gap returns the position of the missing cell.
func (l *Layout) Gap() Position { return l.gap }

// Activate returns the position of the ActivateButton, where every pointer
// rests at the start of a code.
func (l *Layout) Activate() Position { return l.activate }

// InBounds reports whether p lies within the grid, gap included.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.height && p.Col >= 0 && p.Col < l.width
}

// ButtonAt returns the label at p. ok is false when p is the gap or lies
// outside the grid.
func (l *Layout) ButtonAt(p Position) (label rune, ok bool) {
	if !l.InBounds(p) || p == l.gap {
		return 0, false
	}

	return l.buttons[p.Row][p.Col], true
}

// IsButton reports whether a pointer may rest on p.
func (l *Layout) IsButton(p Position) bool {
	_, ok := l.ButtonAt(p)
	return ok
}

// Position returns where label sits, or ErrUnknownButton.
func (l *Layout) Position(label rune) (Position, error) {
	p, ok := l.index[label]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownButton, label, l.name)
	}

	return p, nil
}

// Buttons returns every label in row-major order, gap excluded.
func (l *Layout) Buttons() []rune {
	out := make([]rune, 0, len(l.index))
	for r := 0; r < l.height; r++ {
		for c := 0; c < l.width; c++ {
			if label, ok := l.ButtonAt(Position{Row: r, Col: c}); ok {
				out = append(out, label)
			}
		}
	}

	return out
}

// Chain returns one layout per layer for a chain of the given depth.
// Entries 0..depth use directional (entry 0 is the human's own keypad) and
// entry depth+1 uses terminal. Nil arguments fall back to Directional() and
// Terminal().
func Chain(depth int, dir, term *Layout) ([]*Layout, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if dir == nil {
		dir = directional
	}
	if term == nil {
		term = terminal
	}
	layers := make([]*Layout, depth+2)
	for i := 0; i <= depth; i++ {
		layers[i] = dir
	}
	layers[depth+1] = term

	return layers, nil
}
