package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ErrNotAButton is returned when a start or end position is the gap or lies
// outside the layout.
var ErrNotAButton = errors.New("route: position is not a button")

// Candidate is one ordering of unit moves, followed by an implicit press of
// the activate button.
type Candidate struct {
	Moves []keypad.Direction
}

// Run is a block of identical consecutive moves.
type Run struct {
	Dir   keypad.Direction
	Count int
}

// Keys renders c as the labels typed on the keypad one layer up, e.g. "<<^A".
func (c Candidate) Keys() string {
	var b strings.Builder
	b.Grow(len(c.Moves) + 1)
	for _, m := range c.Moves {
		b.WriteRune(m.Button())
	}
	b.WriteRune(keypad.ActivateButton)

	return b.String()
}

func (c Candidate) String() string { return c.Keys() }

// Runs groups the moves into blocks of the same direction.
func (c Candidate) Runs() []Run {
	runs := make([]Run, 0, 2)
	for _, m := range c.Moves {
		if n := len(runs); n > 0 && runs[n-1].Dir == m {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Dir: m, Count: 1})
	}

	return runs
}

// Stops returns the distinct buttons the layer above presses on upper to
// type c: one arrow per run, then the activate button. Repeated presses of
// the same arrow are not listed.
func (c Candidate) Stops(upper *keypad.Layout) ([]keypad.Position, error) {
	runs := c.Runs()
	stops := make([]keypad.Position, 0, len(runs)+1)
	for _, r := range runs {
		p, err := upper.Position(r.Dir.Button())
		if err != nil {
			return nil, err
		}
		stops = append(stops, p)
	}

	return append(stops, upper.Activate()), nil
}

// Candidates returns the orderings that realize d:
//
//	zero        → one candidate with no moves (activate only)
//	single axis → one candidate
//	both axes   → horizontal-first, then vertical-first
func Candidates(d keypad.Displacement) []Candidate {
	var horizontal, vertical []keypad.Direction
	if d.DCol < 0 {
		horizontal = repeat(keypad.Left, -d.DCol)
	} else {
		horizontal = repeat(keypad.Right, d.DCol)
	}
	if d.DRow < 0 {
		vertical = repeat(keypad.Up, -d.DRow)
	} else {
		vertical = repeat(keypad.Down, d.DRow)
	}

	switch {
	case d.IsZero():
		return []Candidate{{}}
	case d.DRow == 0:
		return []Candidate{{Moves: horizontal}}
	case d.DCol == 0:
		return []Candidate{{Moves: vertical}}
	}

	return []Candidate{
		{Moves: concat(horizontal, vertical)},
		{Moves: concat(vertical, horizontal)},
	}
}

// Feasible reports whether c can be walked on l from start without the
// pointer ever resting on the gap or leaving the grid. The answer depends on
// the absolute start, not only on the displacement.
func Feasible(l *keypad.Layout, start keypad.Position, c Candidate) bool {
	if !l.IsButton(start) {
		return false
	}
	p := start
	for _, m := range c.Moves {
		p = p.Add(m.Offset())
		if !l.IsButton(p) {
			return false
		}
	}

	return true
}

// Viable returns the candidates moving from start to end on l that survive
// Feasible, in Candidates order. It returns ErrNotAButton for invalid
// endpoints and may return an empty slice for a defective layout.
func Viable(l *keypad.Layout, start, end keypad.Position) ([]Candidate, error) {
	if !l.IsButton(start) {
		return nil, fmt.Errorf("%w: start %v on %s", ErrNotAButton, start, l.Name())
	}
	if !l.IsButton(end) {
		return nil, fmt.Errorf("%w: end %v on %s", ErrNotAButton, end, l.Name())
	}
	all := Candidates(start.To(end))
	out := all[:0]
	for _, c := range all {
		if Feasible(l, start, c) {
			out = append(out, c)
		}
	}

	return out, nil
}

func repeat(d keypad.Direction, n int) []keypad.Direction {
	out := make([]keypad.Direction, n)
	for i := range out {
		out[i] = d
	}

	return out
}

func concat(a, b []keypad.Direction) []keypad.Direction {
	out := make([]keypad.Direction, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
