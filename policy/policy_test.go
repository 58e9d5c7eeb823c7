package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

const (
	E = game.None
	B = game.Black
	W = game.White
)

func board(t *testing.T, size int, cells ...game.Colour) *goban.Board {
	t.Helper()
	b, err := goban.New(size)
	require.NoError(t, err)
	if len(cells) > 0 {
		require.NoError(t, b.Load(cells))
	}
	return b
}

func TestNeighbourhoodEmptyCentre(t *testing.T) {
	b := board(t, 3)
	p := b.PointOf(2, 2)
	assert.Zero(t, Neighbourhood(b, p, game.BlackP))
	assert.Zero(t, Neighbourhood(b, p, game.WhiteP))
}

func TestNeighbourhoodCornerBorders(t *testing.T) {
	b := board(t, 3)
	// (1,1): borders at offsets 0, 3, 5, 6, 7, everything else empty
	want := uint32(3*1 + 3*64 + 3*1024 + 3*4096 + 3*16384)
	assert.Equal(t, want, Neighbourhood(b, b.PointOf(1, 1), game.BlackP))
}

func TestNeighbourhoodDistinguishesPlayers(t *testing.T) {
	b := board(t, 3)
	require.NoError(t, b.Play(b.PointOf(2, 2), game.BlackP))

	p := b.PointOf(1, 1)
	base := Neighbourhood(board(t, 3), p, game.BlackP)
	// (2,2) sits diagonally above-right of the corner, offset 2
	assert.Equal(t, base+1*16, Neighbourhood(b, p, game.BlackP))
	assert.Equal(t, base+2*16, Neighbourhood(b, p, game.WhiteP))
}

func TestLoadWeights(t *testing.T) {
	w, err := LoadWeights(strings.NewReader(`
# pattern table
12 0.5
64707 2.25

99 1
`))
	require.NoError(t, err)
	assert.Equal(t, Weights{12: 0.5, 64707: 2.25, 99: 1}, w)
}

func TestLoadWeightsRejectsBadInput(t *testing.T) {
	for _, input := range []string{
		"12",
		"12 0.5 extra",
		"notanumber 0.5",
		"12 notaweight",
		"12 0",
		"12 -1",
		"70000 0.5",
	} {
		_, err := LoadWeights(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestGenerateFollowsPattern(t *testing.T) {
	b := board(t, 3)
	corner := b.PointOf(1, 1)
	pl := &Policy{Weights: Weights{
		Neighbourhood(b, corner, game.BlackP): 1,
	}}

	// only (1,1) matches: the other corners see borders on different offsets
	for i := 0; i < 10; i++ {
		assert.Equal(t, corner, pl.Generate(b))
	}
}

func TestGenerateFallsBackToRandom(t *testing.T) {
	b := board(t, 2)
	pl := &Policy{Weights: Weights{42: 1}}

	mv := pl.Generate(b)
	require.False(t, mv.IsPass())
	assert.True(t, b.IsLegal(mv, b.ToMove()))
}

func TestRandomPassesWhenStuck(t *testing.T) {
	b := board(t, 3,
		B, W, B,
		W, E, W,
		B, W, B,
	)
	assert.Equal(t, game.Pass, New().Random(b))
}

func TestMovesLabels(t *testing.T) {
	b := board(t, 3)

	moves, label := New().Moves(b)
	assert.Equal(t, "Random", label)
	assert.Len(t, moves, 9)

	corner := b.PointOf(1, 1)
	pl := &Policy{Weights: Weights{
		Neighbourhood(b, corner, game.BlackP): 1,
	}}
	moves, label = pl.Moves(b)
	assert.Equal(t, "Pattern", label)
	assert.Equal(t, []game.Point{corner}, moves)
}

func TestFillsEye(t *testing.T) {
	b := board(t, 3,
		E, B, E,
		B, B, E,
		E, E, E,
	)
	assert.True(t, FillsEye(b, b.PointOf(1, 1), game.BlackP))
	assert.False(t, FillsEye(b, b.PointOf(3, 3), game.BlackP))
	// suicide for white, filtered through the legality clause
	assert.True(t, FillsEye(b, b.PointOf(1, 1), game.WhiteP))
}

func TestSelfAtari(t *testing.T) {
	b := board(t, 3,
		B, W, E,
		E, W, E,
		E, E, E,
	)
	// extending the lone corner stone leaves it with a single liberty
	assert.True(t, SelfAtari(b, b.PointOf(2, 1), game.BlackP))
	assert.False(t, SelfAtari(b, b.PointOf(3, 3), game.BlackP))
}

func TestPlayoutTerminalPosition(t *testing.T) {
	b := board(t, 3,
		B, W, B,
		W, E, W,
		B, W, B,
	)
	// black to move with no legal move: white already won
	assert.Equal(t, game.WhiteP, New().Playout(b, 0))
	assert.Equal(t, game.BlackP, b.ToMove())
}

func TestPlayoutLimitOne(t *testing.T) {
	b := board(t, 3)
	winner := New().Playout(b, 1)
	assert.Equal(t, game.BlackP, winner)
	assert.Empty(t, b.History())
}
