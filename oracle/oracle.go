// Package oracle computes, for a chain of directional keypads ending at a
// terminal keypad, the fewest human keystrokes needed to move any layer's
// pointer between two buttons and press the second one.
//
// Layers are numbered from the human outwards:
//
//	layer 0          the human's own keypad; every press costs 1
//	layers 1..depth  directional keypads, each driven by the layer below
//	layer depth+1    the terminal keypad that emits the code
//
// cost(layer, start, end) is the minimum over the gap-free arrow orderings
// from start to end of the cost, one layer down, of typing that ordering.
// Every layer below has its pointer resting on the activate button before
// and after a press, which is what lets the problem split per press.
//
// Results are cached per Oracle under (layer, start, end), so a full solve
// touches at most (depth+2) × 11² entries regardless of code length.
package oracle

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/route"
)

// memoKey addresses one cache entry. The absolute start is part of the key:
// feasibility depends on it, so a displacement alone is not enough.
type memoKey struct {
	layer      int
	start, end keypad.Position
}

// Oracle owns the layer layouts and the memo cache of one solve.
// It is not safe for concurrent use.
type Oracle struct {
	depth  int
	layers []*keypad.Layout
	opts   Options
	memo   map[memoKey]int64
}

// New builds an Oracle for a chain with depth directional robot layers.
// Returns ErrOptionViolation for bad options or keypad.ErrNegativeDepth.
func New(depth int, opts ...Option) (*Oracle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	layers, err := keypad.Chain(depth, o.Directional, o.Terminal)
	if err != nil {
		return nil, err
	}

	return &Oracle{
		depth:  depth,
		layers: layers,
		opts:   o,
		memo:   make(map[memoKey]int64),
	}, nil
}

// Depth returns the number of directional robot layers.
func (o *Oracle) Depth() int { return o.depth }

// TopLayer returns the index of the terminal keypad layer.
func (o *Oracle) TopLayer() int { return o.depth + 1 }

// Layout returns the keypad used at layer, or nil when out of range.
func (o *Oracle) Layout(layer int) *keypad.Layout {
	if layer < 0 || layer >= len(o.layers) {
		return nil
	}

	return o.layers[layer]
}

// CacheSize reports how many (layer, start, end) entries are memoized.
func (o *Oracle) CacheSize() int { return len(o.memo) }

// Reset drops every cached entry.
func (o *Oracle) Reset() { o.memo = make(map[memoKey]int64) }

// Cost returns the fewest human keystrokes that move the pointer at layer
// from start to end and press end. Both positions must be buttons of
// Layout(layer).
//
// Errors: ErrLayerOutOfRange, route.ErrNotAButton, ErrNoFeasibleCandidate,
// ErrCostOverflow, or keypad errors from a custom directional layout.
func (o *Oracle) Cost(layer int, start, end keypad.Position) (int64, error) {
	if err := o.check(layer, start, end); err != nil {
		return 0, err
	}

	return o.cost(layer, start, end)
}

// PressCost is Cost addressed by button labels instead of positions.
func (o *Oracle) PressCost(layer int, from, to rune) (int64, error) {
	start, end, err := o.resolve(layer, from, to)
	if err != nil {
		return 0, err
	}

	return o.cost(layer, start, end)
}

func (o *Oracle) resolve(layer int, from, to rune) (start, end keypad.Position, err error) {
	l := o.Layout(layer)
	if l == nil {
		return start, end, fmt.Errorf("%w: %d not in [0,%d]", ErrLayerOutOfRange, layer, o.TopLayer())
	}
	if start, err = l.Position(from); err != nil {
		return start, end, err
	}
	if end, err = l.Position(to); err != nil {
		return start, end, err
	}

	return start, end, nil
}

func (o *Oracle) check(layer int, start, end keypad.Position) error {
	l := o.Layout(layer)
	if l == nil {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrLayerOutOfRange, layer, o.TopLayer())
	}
	if !l.IsButton(start) {
		return fmt.Errorf("%w: start %v on %s", route.ErrNotAButton, start, l.Name())
	}
	if !l.IsButton(end) {
		return fmt.Errorf("%w: end %v on %s", route.ErrNotAButton, end, l.Name())
	}

	return nil
}

// cost is the memoized recursion behind Cost; inputs are already validated.
func (o *Oracle) cost(layer int, start, end keypad.Position) (int64, error) {
	if layer == 0 {
		return 1, nil
	}
	key := memoKey{layer: layer, start: start, end: end}
	if c, ok := o.memo[key]; ok {
		return c, nil
	}

	best, _, err := o.best(layer, start, end)
	if err != nil {
		return 0, err
	}
	o.memo[key] = best
	o.opts.OnMemo(layer, start, end, best)

	return best, nil
}

// best evaluates every viable candidate at layer and returns the cheapest
// cost with the candidate achieving it; ties keep the earliest candidate.
func (o *Oracle) best(layer int, start, end keypad.Position) (int64, route.Candidate, error) {
	cands, err := route.Viable(o.layers[layer], start, end)
	if err != nil {
		return 0, route.Candidate{}, err
	}
	if len(cands) == 0 {
		return 0, route.Candidate{}, fmt.Errorf("%w: layer %d %v→%v on %s",
			ErrNoFeasibleCandidate, layer, start, end, o.layers[layer].Name())
	}

	var (
		best   int64 = -1
		chosen route.Candidate
	)
	for _, c := range cands {
		total, err := o.typeCost(layer-1, c, start.To(end))
		if err != nil {
			return 0, route.Candidate{}, err
		}
		if best < 0 || total < best {
			best, chosen = total, c
		}
	}

	return best, chosen, nil
}

// typeCost is what layer pays to type c on its own keypad, starting and
// ending on the activate button. Repeated arrows are charged at the cost of
// re-pressing a button without moving, which is one human keystroke.
func (o *Oracle) typeCost(layer int, c route.Candidate, d keypad.Displacement) (int64, error) {
	l := o.layers[layer]
	stops, err := c.Stops(l)
	if err != nil {
		return 0, err
	}
	var total int64
	prev := l.Activate()
	for _, next := range stops {
		step, err := o.cost(layer, prev, next)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, step); err != nil {
			return 0, err
		}
		prev = next
	}
	if extra := d.ExtraUnitPresses(); extra > 0 {
		again, err := o.cost(layer, l.Activate(), l.Activate())
		if err != nil {
			return 0, err
		}
		if again > math.MaxInt64/int64(extra) {
			return 0, ErrCostOverflow
		}
		if total, err = add(total, again*int64(extra)); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// Expand reconstructs one minimal sequence of human key labels realizing the
// press of end from start at layer. Its length always equals Cost. Sequences
// longer than MaxExpand are refused with ErrExpandTooLong.
func (o *Oracle) Expand(layer int, start, end keypad.Position) (string, error) {
	if err := o.check(layer, start, end); err != nil {
		return "", err
	}
	n, err := o.cost(layer, start, end)
	if err != nil {
		return "", err
	}
	if n > o.opts.MaxExpand {
		return "", fmt.Errorf("%w: %d keys exceeds limit %d", ErrExpandTooLong, n, o.opts.MaxExpand)
	}
	var b strings.Builder
	b.Grow(int(min(n, DefaultMaxExpand)))
	if err := o.expand(&b, layer, start, end); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (o *Oracle) expand(b *strings.Builder, layer int, start, end keypad.Position) error {
	if layer == 0 {
		label, _ := o.layers[0].ButtonAt(end)
		b.WriteRune(label)
		return nil
	}
	_, c, err := o.best(layer, start, end)
	if err != nil {
		return err
	}
	below := o.layers[layer-1]
	prev := below.Activate()
	for _, r := range c.Runs() {
		next, err := below.Position(r.Dir.Button())
		if err != nil {
			return err
		}
		if err := o.expand(b, layer-1, prev, next); err != nil {
			return err
		}
		for i := 1; i < r.Count; i++ {
			if err := o.expand(b, layer-1, next, next); err != nil {
				return err
			}
		}
		prev = next
	}

	return o.expand(b, layer-1, prev, below.Activate())
}

// add returns a+b or ErrCostOverflow.
func add(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrCostOverflow
	}

	return a + b, nil
}
