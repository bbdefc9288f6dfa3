// Package sequencer defines code, report and error types for scoring
// terminal-keypad codes.
package sequencer

import "errors"

// Sentinel errors for parsing and scoring.
var (
	// ErrEmptyCode indicates an empty code string.
	ErrEmptyCode = errors.New("sequencer: empty code")
	// ErrInvalidCharacter indicates a character other than 0-9 or 'A'.
	ErrInvalidCharacter = errors.New("sequencer: invalid character")
	// ErrMissingActivate indicates the code does not end with its only 'A'.
	ErrMissingActivate = errors.New("sequencer: code must end with a single 'A'")
	// ErrValueRange indicates digits too large for int64.
	ErrValueRange = errors.New("sequencer: numeric value out of range")
	// ErrNoCodes indicates input with no codes in it.
	ErrNoCodes = errors.New("sequencer: no codes in input")
	// ErrScoreOverflow indicates a score that does not fit in int64.
	ErrScoreOverflow = errors.New("sequencer: score overflows int64")
)

// Entry is the scored result for one code.
type Entry struct {
	Code       Code
	Length     int64
	Complexity int64
}

// Report holds every entry of a scoring run and their total.
type Report struct {
	Depth   int
	Entries []Entry
	Total   int64
}
