package simulate

import (
	"context"
	"fmt"
	"strings"
)

// queueItem pairs a state with its distance from the start.
type queueItem struct {
	state State
	key   string
	dist  int
}

// walker encapsulates mutable search state.
type walker struct {
	machine *Machine
	opts    SearchOptions
	ctx     context.Context
	codes   []string
	pending map[string]bool
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search finds, for every code, the fewest human presses that make the
// terminal keypad of a depth-deep chain emit exactly that code, starting
// with every pointer on its activate button.
//
// States whose output is not a prefix of some code are dropped. Codes that
// cannot be produced are absent from Result.Lengths.
// Returns ErrNoCodes, ErrOptionViolation, ErrStateLimit, context errors, or
// wrapped OnVisit errors.
func Search(codes []string, depth int, opts ...Option) (*Result, error) {
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	m, err := NewMachine(depth)
	if err != nil {
		return nil, err
	}

	w := &walker{
		machine: m,
		opts:    o,
		ctx:     o.Ctx,
		codes:   codes,
		pending: make(map[string]bool, len(codes)),
		visited: make(map[string]bool),
		res: &Result{
			Lengths: make(map[string]int, len(codes)),
			parent:  make(map[string]link),
			found:   make(map[string]string, len(codes)),
		},
	}
	for _, c := range codes {
		w.pending[c] = true
	}

	start := m.Start()
	if err := w.enqueue(start, start.key(), 0); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// enqueue marks s visited and appends it to the queue.
func (w *walker) enqueue(s State, key string, dist int) error {
	w.visited[key] = true
	w.res.Explored++
	if w.opts.MaxStates > 0 && w.res.Explored > w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d states", ErrStateLimit, w.opts.MaxStates)
	}
	w.queue = append(w.queue, queueItem{state: s, key: key, dist: dist})

	return nil
}

// loop processes the queue until every code is found, the queue drains, or
// an error or cancellation occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 && len(w.pending) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records a newly emitted code and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	if out := item.state.Output; w.pending[out] {
		delete(w.pending, out)
		w.res.Lengths[out] = item.dist
		w.res.found[out] = item.key
		w.opts.OnFound(out, item.dist)
	}
	if err := w.opts.OnVisit(item.state, item.dist); err != nil {
		return fmt.Errorf("simulate: OnVisit error at distance %d: %w", item.dist, err)
	}

	return nil
}

// expand tries every human key from item and enqueues unseen live states.
func (w *walker) expand(item queueItem) error {
	for _, a := range HumanActions {
		next, ok := w.machine.Step(item.state, a)
		if !ok || w.deadEnd(next.Output) {
			continue
		}
		key := next.key()
		if w.visited[key] {
			continue
		}
		w.res.parent[key] = link{prev: item.key, label: a.Label()}
		if err := w.enqueue(next, key, item.dist+1); err != nil {
			return err
		}
	}

	return nil
}

// deadEnd reports whether out can no longer grow into any code.
func (w *walker) deadEnd(out string) bool {
	for _, c := range w.codes {
		if strings.HasPrefix(c, out) {
			return false
		}
	}

	return true
}
