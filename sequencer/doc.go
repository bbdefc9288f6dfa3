// Package sequencer turns terminal-keypad codes into keystroke counts and
// puzzle scores using the cost oracle.
//
// What:
//
//   - ParseCode / ParseCodes read codes: digits followed by a trailing 'A'.
//     ParseCodes trims lines, skips blank ones and reports the line number
//     of the first malformed code.
//   - Scorer.Length walks a code from the terminal 'A', summing one oracle
//     cost per character.
//   - Scorer.Complexity multiplies that length by the code's numeric value.
//   - Scorer.Score and Solve sum complexities over many codes.
//
// Each Scorer owns one oracle, so its cache lives exactly as long as the
// depth configuration it serves. Scoring is deterministic: running it twice
// on the same input yields the same report.
//
// Complexity (n = total code characters, D = depth):
//
//   - ParseCodes: O(n).
//   - Score:      O(n) oracle lookups after at most O(D) cache fills per
//     distinct button pair.
//
// Errors:
//
//   - ErrEmptyCode, ErrInvalidCharacter, ErrMissingActivate, ErrValueRange:
//     malformed codes.
//   - ErrNoCodes: input contained no codes.
//   - ErrScoreOverflow: a product or sum does not fit in int64.
//   - Oracle errors propagate unchanged.
package sequencer
