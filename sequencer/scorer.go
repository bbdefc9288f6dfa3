package sequencer

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/oracle"
)

// Scorer scores codes for one chain depth.
type Scorer struct {
	oracle *oracle.Oracle
}

// NewScorer creates a Scorer with a fresh oracle for depth robot layers.
func NewScorer(depth int, opts ...oracle.Option) (*Scorer, error) {
	o, err := oracle.New(depth, opts...)
	if err != nil {
		return nil, err
	}

	return &Scorer{oracle: o}, nil
}

// Depth returns the configured chain depth.
func (s *Scorer) Depth() int { return s.oracle.Depth() }

// Oracle exposes the underlying cost oracle.
func (s *Scorer) Oracle() *oracle.Oracle { return s.oracle }

// Length returns the fewest human keystrokes that make the terminal keypad
// type c, starting with every pointer on 'A'.
func (s *Scorer) Length(c Code) (int64, error) {
	top := s.oracle.TopLayer()
	term := s.oracle.Layout(top)
	stops, err := Keys(c, term)
	if err != nil {
		return 0, err
	}
	var total int64
	start := term.Activate()
	for _, end := range stops {
		n, err := s.oracle.Cost(top, start, end)
		if err != nil {
			return 0, fmt.Errorf("sequencer: %s: %w", c.Keys, err)
		}
		if total > math.MaxInt64-n {
			return 0, fmt.Errorf("%w: length of %s", ErrScoreOverflow, c.Keys)
		}
		total += n
		start = end
	}

	return total, nil
}

// Complexity returns Length(c) × c.Value.
func (s *Scorer) Complexity(c Code) (int64, error) {
	e, err := s.entry(c)
	if err != nil {
		return 0, err
	}

	return e.Complexity, nil
}

func (s *Scorer) entry(c Code) (Entry, error) {
	n, err := s.Length(c)
	if err != nil {
		return Entry{}, err
	}
	if c.Value != 0 && n > math.MaxInt64/c.Value {
		return Entry{}, fmt.Errorf("%w: %d × %d", ErrScoreOverflow, n, c.Value)
	}

	return Entry{Code: c, Length: n, Complexity: n * c.Value}, nil
}

// Score scores every code and sums their complexities.
func (s *Scorer) Score(codes []Code) (*Report, error) {
	rep := &Report{Depth: s.Depth(), Entries: make([]Entry, 0, len(codes))}
	for _, c := range codes {
		e, err := s.entry(c)
		if err != nil {
			return nil, err
		}
		if rep.Total > math.MaxInt64-e.Complexity {
			return nil, fmt.Errorf("%w: total at %s", ErrScoreOverflow, c.Keys)
		}
		rep.Total += e.Complexity
		rep.Entries = append(rep.Entries, e)
	}

	return rep, nil
}

// Solve parses codes from r and returns their total score at depth.
func Solve(r io.Reader, depth int) (int64, error) {
	codes, err := ParseCodes(r)
	if err != nil {
		return 0, err
	}
	s, err := NewScorer(depth)
	if err != nil {
		return 0, err
	}
	rep, err := s.Score(codes)
	if err != nil {
		return 0, err
	}

	return rep.Total, nil
}

// Keys returns the button labels of c as terminal positions, for callers
// that drive the oracle directly.
func Keys(c Code, term *keypad.Layout) ([]keypad.Position, error) {
	out := make([]keypad.Position, 0, len(c.Keys))
	for _, ch := range c.Keys {
		p, err := term.Position(ch)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
