// Package simulate provides tunable options and error definitions
// for the explicit keypad-chain search.
package simulate

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for simulation.
var (
	// ErrNoCodes is returned when Search is given nothing to look for.
	ErrNoCodes = errors.New("simulate: no target codes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")

	// ErrStateLimit is returned when the search explores more states than
	// MaxStates allows.
	ErrStateLimit = errors.New("simulate: state limit exceeded")

	// ErrNotFound is returned by Result.Presses for a code that was not reached.
	ErrNotFound = errors.New("simulate: code not reached")

	// ErrBadKey is returned by Replay for a label that is not ^v<>A.
	ErrBadKey = errors.New("simulate: not a human key")

	// ErrIllegalMove is returned by Replay when a press drives a pointer onto
	// a gap or off its keypad.
	ErrIllegalMove = errors.New("simulate: illegal move")
)

// Option configures Search via functional arguments.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize Search.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxStates, if > 0, aborts with ErrStateLimit once more states than
	// this have been discovered. 0 disables the limit.
	MaxStates int

	// OnVisit is called for each dequeued state with its distance from the
	// start. Returning an error aborts the search.
	OnVisit func(s State, dist int) error

	// OnFound is called the first time a target code is emitted.
	OnFound func(code string, presses int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with a background context, no state
// limit and no-op hooks.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:       context.Background(),
		MaxStates: 0,
		OnVisit:   func(State, int) error { return nil },
		OnFound:   func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the number of discovered states.
//
//	n > 0: limit to n states
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnVisit registers a callback run for each visited state.
func WithOnVisit(fn func(s State, dist int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnFound registers a callback run when a code is first emitted.
func WithOnFound(fn func(code string, presses int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnFound = fn
		}
	}
}

// Result holds the outcome of a Search:
//   - Lengths: fewest human presses per target code.
//   - Explored: number of states discovered.
type Result struct {
	Lengths  map[string]int
	Explored int

	parent map[string]link
	found  map[string]string // code → state key where it was first emitted
}

// link records how a state was first reached.
type link struct {
	prev  string
	label rune
}

// Presses reconstructs one shortest human key sequence for code.
// Returns ErrNotFound if code was not reached.
func (r *Result) Presses(code string) (string, error) {
	cur, ok := r.found[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	// build reversed sequence
	var rev []rune
	for {
		l, ok := r.parent[cur]
		if !ok {
			break
		}
		rev = append(rev, l.label)
		cur = l.prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return string(rev), nil
}
