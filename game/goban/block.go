package goban

import (
	"fmt"

	"github.com/baduk-engine/sente/game"
)

// A block is a maximal set of same-coloured stones connected by direct
// adjacency. Blocks are never stored; they are recomputed whenever liberty or
// capture logic needs one.

// BlockOf flood-fills from stone over same-coloured on-board neighbours and
// returns the full connected block. The cell at stone must hold a stone.
func (b *Board) BlockOf(stone game.Point) []game.Point {
	colour := b.cells[stone]
	if !colour.IsStone() {
		panic(fmt.Sprintf("block of %v requested, but the cell holds %v", stone, colour))
	}

	marker := make([]bool, b.maxPoint)
	marker[stone] = true
	block := []game.Point{stone}
	stack := []game.Point{stone}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range b.neighbours[p] {
			if b.cells[nb] == colour && !marker[nb] {
				marker[nb] = true
				block = append(block, nb)
				stack = append(stack, nb)
			}
		}
	}
	return block
}

// StoneHasLiberty reports whether the stone at p has an immediate empty
// neighbour. This is the cheap path that avoids a full block computation.
func (b *Board) StoneHasLiberty(p game.Point) bool {
	return b.FindNeighbourOfColour(p, game.None) != game.NoPoint
}

// HasLiberty reports whether any stone of the block has an empty on-board
// neighbour. When a liberty is found it is remembered as a hint for every
// stone of the block.
func (b *Board) HasLiberty(block []game.Point) bool {
	for _, stone := range block {
		lib := b.FindNeighbourOfColour(stone, game.None)
		if lib != game.NoPoint {
			for _, s := range block {
				b.libertyHint[s] = lib
			}
			return true
		}
	}
	return false
}

// fastLibertyCheck tries the remembered liberty and the stone's own
// neighbours before the caller falls back to a full block scan.
func (b *Board) fastLibertyCheck(stone game.Point) bool {
	if lib := b.libertyHint[stone]; lib != game.NoPoint && b.cells[lib] == game.None {
		return true // the remembered liberty is still open
	}
	return b.StoneHasLiberty(stone)
}

// blockCaptured reports whether the block of the opponent stone at p has been
// left without a liberty. The board is not modified.
func (b *Board) blockCaptured(p game.Point) bool {
	if b.fastLibertyCheck(p) {
		return false
	}
	return !b.HasLiberty(b.BlockOf(p))
}

// removeBlock clears every stone of the block off the board.
func (b *Board) removeBlock(block []game.Point) {
	for _, stone := range block {
		b.cells[stone] = game.None
		b.libertyHint[stone] = game.NoPoint
	}
}

// Liberties counts the distinct liberties of the block containing the stone
// at p.
func (b *Board) Liberties(p game.Point) int {
	seen := make(map[game.Point]struct{})
	for _, stone := range b.BlockOf(p) {
		for _, nb := range b.neighbours[stone] {
			if b.cells[nb] == game.None {
				seen[nb] = struct{}{}
			}
		}
	}
	return len(seen)
}

// NeighboursOfColour lists the on-board neighbours of p holding the given
// colour.
func (b *Board) NeighboursOfColour(p game.Point, c game.Colour) []game.Point {
	var nbc []game.Point
	for _, nb := range b.neighbours[p] {
		if b.cells[nb] == c {
			nbc = append(nbc, nb)
		}
	}
	return nbc
}

// FindNeighbourOfColour returns one on-board neighbour of p holding the given
// colour, or NoPoint.
func (b *Board) FindNeighbourOfColour(p game.Point, c game.Colour) game.Point {
	for _, nb := range b.neighbours[p] {
		if b.cells[nb] == c {
			return nb
		}
	}
	return game.NoPoint
}

// IsSurrounded reports whether every on-board neighbour of the point holds
// the given colour.
func (b *Board) IsSurrounded(p game.Point, c game.Colour) bool {
	for _, nb := range b.neighbours[p] {
		if b.cells[nb] != c {
			return false
		}
	}
	return true
}

// IsEye reports whether the empty point is a simple eye for the player: all
// orthogonal neighbours are the player's stones, and the diagonals do not
// reveal a false eye (at most one opponent diagonal in the centre, none at
// the edge).
func (b *Board) IsEye(p game.Point, player game.Player) bool {
	if !b.IsSurrounded(p, player.Colour()) {
		return false
	}
	opp := player.Opponent().Colour()
	falseCount := 0
	atEdge := 0
	for _, d := range b.diagNeighbours(p) {
		if d < 0 || int32(d) >= b.maxPoint || b.cells[d] == game.Border {
			atEdge = 1
			continue
		}
		if b.cells[d] == opp {
			falseCount++
		}
	}
	return falseCount <= 1-atEdge
}
