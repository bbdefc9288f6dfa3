package simulate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/simulate"
)

var exampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

// TestSearch_Depth2 reproduces the classic example lengths.
func TestSearch_Depth2(t *testing.T) {
	res, err := simulate.Search(exampleCodes, 2)
	require.NoError(t, err)
	want := map[string]int{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	assert.Equal(t, want, res.Lengths)
	assert.Positive(t, res.Explored)
}

// TestSearch_Depth0 drives the terminal keypad directly.
func TestSearch_Depth0(t *testing.T) {
	res, err := simulate.Search([]string{"029A"}, 0)
	require.NoError(t, err)
	// <A ^A >^^A vvvA
	assert.Equal(t, 12, res.Lengths["029A"])

	keys, err := res.Presses("029A")
	require.NoError(t, err)
	assert.Len(t, keys, 12)
}

// TestSearch_PressesReplay checks that reconstructed sequences are shortest
// and really emit their code.
func TestSearch_PressesReplay(t *testing.T) {
	for _, depth := range []int{0, 1, 2} {
		res, err := simulate.Search(exampleCodes, depth)
		require.NoError(t, err)
		for _, code := range exampleCodes {
			keys, err := res.Presses(code)
			require.NoError(t, err)
			assert.Len(t, keys, res.Lengths[code], "depth %d %s", depth, code)

			out, err := simulate.Replay(depth, keys)
			require.NoError(t, err)
			assert.Equal(t, code, out, "depth %d %s", depth, code)
		}
	}
}

// TestSearch_Unreachable leaves codes that no keypad can emit out of Lengths.
func TestSearch_Unreachable(t *testing.T) {
	res, err := simulate.Search([]string{"0A", "B"}, 1)
	require.NoError(t, err)
	assert.Contains(t, res.Lengths, "0A")
	assert.NotContains(t, res.Lengths, "B")

	_, err = res.Presses("B")
	assert.ErrorIs(t, err, simulate.ErrNotFound)
}

// TestSearch_Errors covers input, option and hook failures.
func TestSearch_Errors(t *testing.T) {
	_, err := simulate.Search(nil, 2)
	assert.ErrorIs(t, err, simulate.ErrNoCodes)

	_, err = simulate.Search(exampleCodes, 2, simulate.WithMaxStates(-1))
	assert.ErrorIs(t, err, simulate.ErrOptionViolation)

	_, err = simulate.Search(exampleCodes, -1)
	assert.ErrorIs(t, err, keypad.ErrNegativeDepth)

	_, err = simulate.Search(exampleCodes, 2, simulate.WithMaxStates(10))
	assert.ErrorIs(t, err, simulate.ErrStateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = simulate.Search(exampleCodes, 2, simulate.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = simulate.Search(exampleCodes, 2, simulate.WithOnVisit(func(simulate.State, int) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

// TestSearch_OnFound fires once per code with the final length.
func TestSearch_OnFound(t *testing.T) {
	found := map[string]int{}
	res, err := simulate.Search(exampleCodes, 1, simulate.WithOnFound(func(code string, n int) {
		_, dup := found[code]
		assert.False(t, dup, "%s reported twice", code)
		found[code] = n
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Lengths, found)
}

// TestReplay_KnownSequence replays the published depth-2 sequence for 029A.
func TestReplay_KnownSequence(t *testing.T) {
	keys := "<vA<AA>>^AvAA<^A>A<v<A>>^AvA^A<vA>^A<v<A>^A>AAvA^A<v<A>A>^AAAvA<^A>A"
	require.Len(t, keys, 68)
	out, err := simulate.Replay(2, keys)
	require.NoError(t, err)
	assert.Equal(t, "029A", out)
}

// TestReplay_Errors rejects foreign labels and moves onto the gap.
func TestReplay_Errors(t *testing.T) {
	_, err := simulate.Replay(0, "<x")
	assert.ErrorIs(t, err, simulate.ErrBadKey)

	// two lefts from A reach the terminal gap
	_, err = simulate.Replay(0, "<<")
	assert.ErrorIs(t, err, simulate.ErrIllegalMove)

	// one robot: pointer starts on A, up is off the keypad
	_, err = simulate.Replay(1, "^")
	assert.ErrorIs(t, err, simulate.ErrIllegalMove)
}

// TestMachine_Step walks a single robot through a press.
func TestMachine_Step(t *testing.T) {
	m, err := simulate.NewMachine(1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Depth())

	s := m.Start()
	require.Len(t, s.Cursors, 2)
	assert.Equal(t, keypad.Directional().Activate(), s.Cursors[0])
	assert.Equal(t, keypad.Terminal().Activate(), s.Cursors[1])

	// human presses '<' then 'A': robot moves to '^' then presses it,
	// which moves the terminal pointer from A up to 3
	s, ok := m.Step(s, simulate.Action{Kind: simulate.ActMove, Dir: keypad.Left})
	require.True(t, ok)
	s, ok = m.Step(s, simulate.Action{Kind: simulate.ActActivate})
	require.True(t, ok)
	three, _ := keypad.Terminal().Position('3')
	assert.Equal(t, three, s.Cursors[1])
	assert.Empty(t, s.Output)

	// '>' 'A' returns the robot to A and presses it: terminal types '3'
	s, _ = m.Step(s, simulate.Action{Kind: simulate.ActMove, Dir: keypad.Right})
	s, ok = m.Step(s, simulate.Action{Kind: simulate.ActActivate})
	require.True(t, ok)
	assert.Equal(t, "3", s.Output)
}

// TestAction_Label maps each variant to its key label.
func TestAction_Label(t *testing.T) {
	var labels []rune
	for _, a := range simulate.HumanActions {
		labels = append(labels, a.Label())
	}
	assert.Equal(t, []rune("A<>^v"), labels)
	assert.Equal(t, '7', simulate.Action{Kind: simulate.ActType, Char: '7'}.Label())
}
