package goban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baduk-engine/sente/game"
)

// shorthands for board literals
const (
	E = game.None
	B = game.Black
	W = game.White
)

func TestNewSizes(t *testing.T) {
	for _, size := range []int{2, 3, 5, 9, 19} {
		b, err := New(size)
		require.NoError(t, err)
		assert.Equal(t, size, b.Size())
		assert.Equal(t, size*size, len(b.EmptyPoints()))
		assert.Equal(t, game.BlackP, b.ToMove())
		assert.Equal(t, game.NoPoint, b.KoPoint())
	}

	for _, size := range []int{-1, 0, 1, 20, 100} {
		_, err := New(size)
		assert.Error(t, err, "size %d", size)
	}
}

func TestPointCoordRoundtrip(t *testing.T) {
	b, err := New(5)
	require.NoError(t, err)

	// the padded stride is size+1
	assert.Equal(t, game.Point(1*6+1), b.PointOf(1, 1))
	assert.Equal(t, game.Point(3*6+4), b.PointOf(3, 4))

	for row := 1; row <= 5; row++ {
		for col := 1; col <= 5; col++ {
			p := b.PointOf(row, col)
			assert.Equal(t, game.Coord{Row: row, Col: col}, b.CoordOf(p))
		}
	}

	assert.Panics(t, func() { b.PointOf(0, 3) })
	assert.Panics(t, func() { b.PointOf(3, 6) })
	assert.Panics(t, func() { b.CoordOf(0) }) // point 0 is border
}

func TestNeighboursPrecomputed(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 2}, // corner
		{1, 2, 3}, // edge
		{2, 2, 4}, // centre
	}
	for _, tt := range tests {
		p := b.PointOf(tt.row, tt.col)
		nbs := b.NeighboursOf(p)
		assert.Len(t, nbs, tt.want, "(%d, %d)", tt.row, tt.col)
		for _, nb := range nbs {
			assert.NotEqual(t, game.Border, b.Colour(nb))
		}
	}

	// border points have no neighbours
	assert.Empty(t, b.NeighboursOf(0))
}

func TestEmptyPointsOrder(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	require.NoError(t, b.Load([]game.Colour{
		E, B,
		W, E,
	}))

	want := []game.Point{b.PointOf(1, 1), b.PointOf(2, 2)}
	assert.Equal(t, want, b.EmptyPoints())
}

func TestPlayerAlternates(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	moves := []struct {
		row, col int
	}{{1, 1}, {4, 4}, {1, 3}, {3, 1}, {2, 2}}
	for i, mv := range moves {
		player := b.ToMove()
		if i%2 == 0 {
			require.Equal(t, game.BlackP, player)
		} else {
			require.Equal(t, game.WhiteP, player)
		}
		require.NoError(t, b.Play(b.PointOf(mv.row, mv.col), player))
	}
	assert.Equal(t, len(moves), b.MoveNumber())
	assert.Equal(t, game.WhiteP, b.ToMove())

	for range moves {
		b.UndoLastMove()
	}
	assert.Equal(t, 0, b.MoveNumber())
	assert.Equal(t, game.BlackP, b.ToMove())
	for _, p := range []game.Point{b.PointOf(1, 1), b.PointOf(4, 4)} {
		assert.Equal(t, game.None, b.Colour(p))
	}
}

func TestPassAlternatesAndUndoes(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	b.Pass()
	assert.Equal(t, game.WhiteP, b.ToMove())
	assert.Equal(t, []game.Point{game.Pass}, b.History())
	b.UndoLastMove()
	assert.Equal(t, game.BlackP, b.ToMove())
	assert.Equal(t, 0, b.MoveNumber())
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NoError(t, b.Play(b.PointOf(2, 2), game.BlackP))

	clone := b.Clone()
	require.NoError(t, clone.Play(clone.PointOf(1, 1), game.WhiteP))

	assert.Equal(t, game.None, b.Colour(b.PointOf(1, 1)))
	assert.Equal(t, game.WhiteP, b.ToMove())
	assert.Equal(t, game.BlackP, clone.ToMove())
	assert.Equal(t, 1, b.MoveNumber())
	assert.Equal(t, 2, clone.MoveNumber())
}

func TestWinnerIsLastMover(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	require.NoError(t, b.Play(b.PointOf(1, 1), game.BlackP))
	// White to move; if White had no legal continuation, Black has won.
	assert.Equal(t, game.BlackP, b.Winner())
}
