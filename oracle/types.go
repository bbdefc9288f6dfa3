// Package oracle defines options and sentinel errors for the keypad-chain
// cost oracle.
package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors returned by the oracle.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("oracle: invalid option supplied")

	// ErrLayerOutOfRange indicates a layer outside 0..depth+1.
	ErrLayerOutOfRange = errors.New("oracle: layer out of range")

	// ErrNoFeasibleCandidate indicates that every ordering between two buttons
	// crosses the gap. The keypad model is inconsistent when this happens.
	ErrNoFeasibleCandidate = errors.New("oracle: no feasible candidate")

	// ErrCostOverflow indicates a keystroke count that does not fit in int64.
	ErrCostOverflow = errors.New("oracle: keystroke count overflows int64")

	// ErrExpandTooLong is returned by Expand when the sequence would exceed
	// the configured MaxExpand.
	ErrExpandTooLong = errors.New("oracle: expanded sequence too long")
)

// Limits on the length of sequences built by Expand.
const (
	// DefaultMaxExpand is the limit used when WithMaxExpand is not given.
	DefaultMaxExpand = 1 << 16

	// MaxExpandCeiling is the largest limit WithMaxExpand accepts.
	MaxExpandCeiling = 1 << 28
)

// Option configures an Oracle via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the keypads and callbacks used by an Oracle.
type Options struct {
	// Directional is the keypad every layer but the outermost uses.
	Directional *keypad.Layout

	// Terminal is the keypad of the outermost layer.
	Terminal *keypad.Layout

	// OnMemo is called once per freshly computed (layer, start, end) entry.
	OnMemo func(layer int, start, end keypad.Position, cost int64)

	// MaxExpand bounds Expand output length.
	MaxExpand int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options using the standard keypads, a no-op OnMemo
// hook and DefaultMaxExpand.
func DefaultOptions() Options {
	return Options{
		Directional: keypad.Directional(),
		Terminal:    keypad.Terminal(),
		OnMemo:      func(int, keypad.Position, keypad.Position, int64) {},
		MaxExpand:   DefaultMaxExpand,
	}
}

// WithDirectional replaces the directional keypad.
func WithDirectional(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: directional layout is nil", ErrOptionViolation)
			return
		}
		o.Directional = l
	}
}

// WithTerminal replaces the terminal keypad.
func WithTerminal(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: terminal layout is nil", ErrOptionViolation)
			return
		}
		o.Terminal = l
	}
}

// WithOnMemo registers a callback run for every new cache entry.
func WithOnMemo(fn func(layer int, start, end keypad.Position, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMemo = fn
		}
	}
}

// WithMaxExpand limits the sequence length Expand will build.
//
//	0 < n <= MaxExpandCeiling: limit to n keys
//	otherwise: invalid option → ErrOptionViolation
func WithMaxExpand(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpand must be positive (%d)", ErrOptionViolation, n)
			return
		}
		if n > MaxExpandCeiling {
			o.err = fmt.Errorf("%w: MaxExpand %d exceeds %d", ErrOptionViolation, n, MaxExpandCeiling)
			return
		}
		o.MaxExpand = n
	}
}
