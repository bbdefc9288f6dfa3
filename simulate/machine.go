package simulate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	// ActMove shifts the pointer of the receiving layer by Dir.
	ActMove ActionKind = iota
	// ActActivate presses the button under the receiving layer's pointer.
	ActActivate
	// ActType emits Char from the terminal keypad.
	ActType
)

// Action is what a keypad press does to the layer it drives.
type Action struct {
	Kind ActionKind
	Dir  keypad.Direction // ActMove only
	Char rune             // ActType only
}

// HumanActions are the five keys the human can press, in search order.
var HumanActions = [...]Action{
	{Kind: ActActivate},
	{Kind: ActMove, Dir: keypad.Left},
	{Kind: ActMove, Dir: keypad.Right},
	{Kind: ActMove, Dir: keypad.Up},
	{Kind: ActMove, Dir: keypad.Down},
}

// Label returns the human key that produces a, e.g. '<' or 'A'.
func (a Action) Label() rune {
	switch a.Kind {
	case ActMove:
		return a.Dir.Button()
	case ActActivate:
		return keypad.ActivateButton
	case ActType:
		return a.Char
	}
	panic(fmt.Sprintf("simulate: invalid action kind %d", int(a.Kind)))
}

// State is the joint position of every pointer plus the output so far.
// Cursors[i] hovers over layer i+1; the last one is on the terminal keypad.
type State struct {
	Cursors []keypad.Position
	Output  string
}

// key encodes s compactly for use as a map key.
func (s State) key() string {
	var b strings.Builder
	b.Grow(2*len(s.Cursors) + len(s.Output))
	for _, c := range s.Cursors {
		b.WriteByte(byte(c.Row))
		b.WriteByte(byte(c.Col))
	}
	b.WriteString(s.Output)

	return b.String()
}

func (s State) clone() State {
	cur := make([]keypad.Position, len(s.Cursors))
	copy(cur, s.Cursors)

	return State{Cursors: cur, Output: s.Output}
}

// Machine applies human key presses to an explicit chain of pointers.
type Machine struct {
	layers []*keypad.Layout
}

// NewMachine builds a Machine for depth robot layers on the standard keypads.
func NewMachine(depth int) (*Machine, error) {
	layers, err := keypad.Chain(depth, nil, nil)
	if err != nil {
		return nil, err
	}

	return &Machine{layers: layers}, nil
}

// Depth returns the number of directional robot layers.
func (m *Machine) Depth() int { return len(m.layers) - 2 }

// Start returns the state with every pointer on its activate button and no
// output.
func (m *Machine) Start() State {
	cur := make([]keypad.Position, len(m.layers)-1)
	for i := range cur {
		cur[i] = m.layers[i+1].Activate()
	}

	return State{Cursors: cur}
}

// Step applies a human press to s. ok is false when the press would move a
// pointer onto the gap or off its keypad.
func (m *Machine) Step(s State, a Action) (next State, ok bool) {
	return m.apply(s, a, 1)
}

// apply delivers a to the pointer hovering over layer.
func (m *Machine) apply(s State, a Action, layer int) (State, bool) {
	switch a.Kind {
	case ActMove:
		p := s.Cursors[layer-1].Add(a.Dir.Offset())
		if !m.layers[layer].IsButton(p) {
			return State{}, false
		}
		next := s.clone()
		next.Cursors[layer-1] = p
		return next, true
	case ActType:
		next := s.clone()
		next.Output += string(a.Char)
		return next, true
	case ActActivate:
		label, ok := m.layers[layer].ButtonAt(s.Cursors[layer-1])
		if !ok {
			return State{}, false
		}
		return m.apply(s, m.decode(label, layer), layer+1)
	}
	panic(fmt.Sprintf("simulate: invalid action kind %d", int(a.Kind)))
}

// decode turns the label pressed at layer into the action it sends up.
func (m *Machine) decode(label rune, layer int) Action {
	if layer == len(m.layers)-1 {
		return Action{Kind: ActType, Char: label}
	}
	if label == keypad.ActivateButton {
		return Action{Kind: ActActivate}
	}
	dir, ok := keypad.DirectionOf(label)
	if !ok {
		panic(fmt.Sprintf("simulate: %q is not a directional key", label))
	}

	return Action{Kind: ActMove, Dir: dir}
}

// Replay presses keys (labels from ^v<>A) on a fresh Machine of the given
// depth and returns everything the terminal keypad emitted.
// Returns ErrBadKey for other labels and ErrIllegalMove when a press would
// move a pointer onto a gap.
func Replay(depth int, keys string) (string, error) {
	m, err := NewMachine(depth)
	if err != nil {
		return "", err
	}
	s := m.Start()
	for i, k := range keys {
		a := Action{Kind: ActActivate}
		if k != keypad.ActivateButton {
			dir, ok := keypad.DirectionOf(k)
			if !ok {
				return "", fmt.Errorf("%w: %q at offset %d", ErrBadKey, k, i)
			}
			a = Action{Kind: ActMove, Dir: dir}
		}
		next, ok := m.Step(s, a)
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d", ErrIllegalMove, k, i)
		}
		s = next
	}

	return s.Output, nil
}
