package sequencer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Code is a target sequence for the terminal keypad.
// Keys always ends with the activate button; Value is the number formed by
// the digits before it.
type Code struct {
	Keys  string
	Value int64
}

func (c Code) String() string { return c.Keys }

// ParseCode validates s and computes its numeric value. A code is one or
// more digits followed by a single trailing 'A'; "A" alone has value 0.
// Returns ErrEmptyCode, ErrInvalidCharacter or ErrMissingActivate.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	last := len(s) - 1
	for i, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch == keypad.ActivateButton && i == last:
		case ch == keypad.ActivateButton:
			return Code{}, fmt.Errorf("%w: %q has %q before the end", ErrMissingActivate, s, ch)
		default:
			return Code{}, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, ch, s)
		}
	}
	if s[last] != keypad.ActivateButton {
		return Code{}, fmt.Errorf("%w: %q", ErrMissingActivate, s)
	}

	var value int64
	if digits := s[:last]; digits != "" {
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q: %v", ErrValueRange, s, err)
		}
		value = v
	}

	return Code{Keys: s, Value: value}, nil
}

// ParseCodes reads one code per line. Surrounding whitespace is trimmed and
// blank lines are skipped. Errors name the 1-based line number.
func ParseCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCode(text)
		if err != nil {
			return nil, fmt.Errorf("sequencer: line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sequencer: reading codes: %w", err)
	}
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}

	return codes, nil
}
