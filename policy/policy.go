package policy

import (
	"lukechampine.com/frand"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

// Policy picks moves for the side to move. With a nil Weights table only the
// uniform random policy is used.
type Policy struct {
	Weights        Weights
	CheckSelfAtari bool
}

// New returns a Policy with no pattern table.
func New() *Policy { return &Policy{} }

// Random picks uniformly among the legal moves for the side to move, or Pass
// when there is none.
func (pl *Policy) Random(b *goban.Board) game.Point {
	moves := legalMoves(b)
	if len(moves) == 0 {
		return game.Pass
	}
	return moves[frand.Intn(len(moves))]
}

// Generate picks a pattern-weighted move when the table matches anything,
// falling back to the random policy.
func (pl *Policy) Generate(b *goban.Board) game.Point {
	if pl.Weights != nil {
		moves, values := pl.patternMoves(b)
		if mv := sample(moves, values); mv != game.NoPoint {
			return mv
		}
	}
	return pl.Random(b)
}

// Moves returns the full move list the policy would choose from, with a label
// saying which policy produced it. Pattern moves are filtered for eye fills
// and, when CheckSelfAtari is set, for self-atari.
func (pl *Policy) Moves(b *goban.Board) ([]game.Point, string) {
	player := b.ToMove()
	if pl.Weights != nil {
		pattern, _ := pl.patternMoves(b)
		kept := pattern[:0]
		for _, mv := range pattern {
			if FillsEye(b, mv, player) {
				continue
			}
			if pl.CheckSelfAtari && SelfAtari(b, mv, player) {
				continue
			}
			kept = append(kept, mv)
		}
		if len(kept) > 0 {
			return kept, "Pattern"
		}
	}
	return legalMoves(b), "Random"
}

// patternMoves returns the legal moves whose neighbourhood code is in the
// table, with their weights, in board order.
func (pl *Policy) patternMoves(b *goban.Board) ([]game.Point, []float64) {
	player := b.ToMove()
	var moves []game.Point
	var values []float64
	for _, p := range b.EmptyPoints() {
		if !b.IsLegal(p, player) {
			continue
		}
		if w, ok := pl.Weights[Neighbourhood(b, p, player)]; ok {
			moves = append(moves, p)
			values = append(values, w)
		}
	}
	return moves, values
}

// sample draws one move with probability proportional to its value, or
// NoPoint when moves is empty.
func sample(moves []game.Point, values []float64) game.Point {
	if len(moves) == 0 {
		return game.NoPoint
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	x := frand.Float64() * sum
	var cumulative float64
	for i, v := range values {
		cumulative += v
		if x < cumulative {
			return moves[i]
		}
	}
	return moves[len(moves)-1]
}

func legalMoves(b *goban.Board) []game.Point {
	player := b.ToMove()
	var moves []game.Point
	for _, p := range b.EmptyPoints() {
		if b.IsLegal(p, player) {
			moves = append(moves, p)
		}
	}
	return moves
}

// FillsEye reports whether playing p is illegal for player or fills one of
// their own eyes. Moves it flags are pointless in a simulation.
func FillsEye(b *goban.Board, p game.Point, player game.Player) bool {
	return !b.IsLegal(p, player) || b.IsEye(p, player)
}

// SelfAtari reports whether playing p leaves player's own block with exactly
// one liberty. Blocks that already have more than two liberties cannot end
// up in atari by one move, which avoids the board copy in the common case.
func SelfAtari(b *goban.Board, p game.Point, player game.Player) bool {
	if blocksMaxLiberty(b, p, player.Colour(), 2) > 2 {
		return false
	}
	sim := b.Clone()
	if err := sim.Play(p, player); err != nil {
		return false
	}
	return sim.Liberties(p) == 1
}

// blocksMaxLiberty returns the largest liberty count among player blocks
// adjacent to the empty point p, stopping early once limit is exceeded.
// Returns -1 when p touches no such block.
func blocksMaxLiberty(b *goban.Board, p game.Point, c game.Colour, limit int) int {
	maxLib := -1
	for _, n := range b.NeighboursOf(p) {
		if b.Colour(n) != c {
			continue
		}
		lib := b.Liberties(n)
		if lib > limit {
			return lib
		}
		if lib > maxLib {
			maxLib = lib
		}
	}
	return maxLib
}
