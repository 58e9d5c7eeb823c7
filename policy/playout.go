package policy

import (
	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

// DefaultPlayoutLimit bounds a simulation when neither player runs out of
// moves first.
const DefaultPlayoutLimit = 1000

// Playout simulates a game from b with the policy and returns the winner,
// the player who made the last move. The board itself is not touched. A
// limit of 0 means DefaultPlayoutLimit.
func (pl *Policy) Playout(b *goban.Board, limit int) game.Player {
	if limit <= 0 {
		limit = DefaultPlayoutLimit
	}
	sim := b.Clone()
	for i := 0; i < limit; i++ {
		mv := pl.Generate(sim)
		if mv.IsPass() {
			break
		}
		if err := sim.Play(mv, sim.ToMove()); err != nil {
			break
		}
	}
	return sim.Winner()
}
