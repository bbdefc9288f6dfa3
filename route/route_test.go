package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/route"
)

func keys(cs []route.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Keys()
	}

	return out
}

// TestCandidates covers zero, single-axis and two-axis displacements.
func TestCandidates(t *testing.T) {
	cases := []struct {
		name string
		d    keypad.Displacement
		want []string
	}{
		{"Zero", keypad.Displacement{}, []string{"A"}},
		{"Left", keypad.Displacement{DCol: -2}, []string{"<<A"}},
		{"Right", keypad.Displacement{DCol: 1}, []string{">A"}},
		{"Up", keypad.Displacement{DRow: -3}, []string{"^^^A"}},
		{"Down", keypad.Displacement{DRow: 1}, []string{"vA"}},
		{"UpLeft", keypad.Displacement{DRow: -1, DCol: -2}, []string{"<<^A", "^<<A"}},
		{"DownRight", keypad.Displacement{DRow: 2, DCol: 1}, []string{">vvA", "vv>A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys(route.Candidates(tc.d)))
		})
	}
}

// TestCandidate_RunsAndStops checks the compressed form used one layer up.
func TestCandidate_RunsAndStops(t *testing.T) {
	c := route.Candidates(keypad.Displacement{DRow: -1, DCol: -2})[0]
	assert.Equal(t, []route.Run{{Dir: keypad.Left, Count: 2}, {Dir: keypad.Up, Count: 1}}, c.Runs())

	dir := keypad.Directional()
	stops, err := c.Stops(dir)
	require.NoError(t, err)
	left, _ := dir.Position('<')
	up, _ := dir.Position('^')
	assert.Equal(t, []keypad.Position{left, up, dir.Activate()}, stops)

	zero := route.Candidates(keypad.Displacement{})[0]
	assert.Empty(t, zero.Runs())
	stops, err = zero.Stops(dir)
	require.NoError(t, err)
	assert.Equal(t, []keypad.Position{dir.Activate()}, stops)
}

// TestViable_AvoidsGap verifies that the gap-crossing ordering is dropped
// even when the other ordering would be cheaper to type.
func TestViable_AvoidsGap(t *testing.T) {
	cases := []struct {
		name     string
		layout   *keypad.Layout
		from, to rune
		want     []string
	}{
		{"TerminalAto1", keypad.Terminal(), 'A', '1', []string{"^<<A"}},
		{"Terminal1toA", keypad.Terminal(), '1', 'A', []string{">>vA"}},
		{"Terminal0to7", keypad.Terminal(), '0', '7', []string{"^^^<A"}},
		{"Terminal2to9", keypad.Terminal(), '2', '9', []string{">^^A", "^^>A"}},
		{"DirectionalAtoLeft", keypad.Directional(), 'A', '<', []string{"v<<A"}},
		{"DirectionalLeftToA", keypad.Directional(), '<', 'A', []string{">>^A"}},
		{"DirectionalUpToLeft", keypad.Directional(), '^', '<', []string{"v<A"}},
		{"DirectionalVtoA", keypad.Directional(), 'v', 'A', []string{">^A", "^>A"}},
		{"Same", keypad.Directional(), 'v', 'v', []string{"A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, err := tc.layout.Position(tc.from)
			require.NoError(t, err)
			to, err := tc.layout.Position(tc.to)
			require.NoError(t, err)

			got, err := route.Viable(tc.layout, from, to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, keys(got))
		})
	}
}

// TestFeasible_DependsOnStart shows the same displacement being legal from
// one start and illegal from another.
func TestFeasible_DependsOnStart(t *testing.T) {
	term := keypad.Terminal()
	leftThenUp := route.Candidates(keypad.Displacement{DRow: -1, DCol: -1})[0]
	require.Equal(t, "<^A", leftThenUp.Keys())

	// from '0' the first step lands on the gap
	assert.False(t, route.Feasible(term, keypad.Position{Row: 3, Col: 1}, leftThenUp))
	// from 'A' the same step lands on '0'
	assert.True(t, route.Feasible(term, keypad.Position{Row: 3, Col: 2}, leftThenUp))
	// starting on the gap is never feasible
	assert.False(t, route.Feasible(term, term.Gap(), route.Candidate{}))
}

// TestViable_InvalidEndpoints rejects positions that are not buttons.
func TestViable_InvalidEndpoints(t *testing.T) {
	dir := keypad.Directional()
	_, err := route.Viable(dir, dir.Gap(), dir.Activate())
	assert.ErrorIs(t, err, route.ErrNotAButton)
	_, err = route.Viable(dir, dir.Activate(), keypad.Position{Row: 5, Col: 5})
	assert.ErrorIs(t, err, route.ErrNotAButton)
}

// TestViable_AlwaysSurvivor checks that every button pair on both keypads
// has at least one gap-free ordering.
func TestViable_AlwaysSurvivor(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Terminal(), keypad.Directional()} {
		for _, a := range l.Buttons() {
			for _, b := range l.Buttons() {
				from, _ := l.Position(a)
				to, _ := l.Position(b)
				got, err := route.Viable(l, from, to)
				require.NoError(t, err)
				assert.NotEmpty(t, got, "%s %q→%q", l.Name(), a, b)
			}
		}
	}
}
