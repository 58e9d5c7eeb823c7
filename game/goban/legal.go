package goban

import (
	"github.com/pkg/errors"

	"github.com/baduk-engine/sente/game"
)

// IsLegal reports whether the player may play on the point. It is a pure
// predicate: the board is tentatively mutated during the probe and fully
// restored before returning on every path.
//
// Under RulesNoCapture a probe that finds a capture rejects the move, exactly
// like the committing path does.
func (b *Board) IsLegal(p game.Point, player game.Player) bool {
	if p < 0 || !b.onBoard(p) {
		return false
	}
	if b.cells[p] != game.None {
		return false
	}
	if b.rules == RulesCapture && p == b.ko {
		return false
	}

	opp := player.Opponent().Colour()
	b.cells[p] = player.Colour()
	b.libertyHint[p] = game.NoPoint

	captures := false
	for _, nb := range b.neighbours[p] {
		if b.cells[nb] != opp {
			continue
		}
		if b.blockCaptured(nb) {
			if b.rules == RulesNoCapture {
				b.cells[p] = game.None
				return false
			}
			captures = true
		}
	}

	if !captures && !b.StoneHasLiberty(p) {
		// check suicide of the whole block
		if !b.HasLiberty(b.BlockOf(p)) {
			b.cells[p] = game.None
			return false
		}
	}
	b.cells[p] = game.None
	return true
}

// Play commits a move for the player on the point. On failure the board is
// left untouched and one of the exported sentinel errors explains why.
func (b *Board) Play(p game.Point, player game.Player) error {
	if !game.IsValid(player) {
		panic("invalid player")
	}
	if p.IsPass() || p < 0 || !b.onBoard(p) {
		return errors.WithMessagef(ErrPass, "unable to make %v", game.Move{Player: player, Point: p})
	}
	if b.cells[p] != game.None {
		return errors.WithMessagef(ErrOccupied, "unable to make %v", game.Move{Player: player, Point: p})
	}
	if p == b.ko {
		return errors.WithMessagef(ErrKoPoint, "unable to make %v", game.Move{Player: player, Point: p})
	}

	opp := player.Opponent().Colour()
	inEnemyEye := b.IsSurrounded(p, opp)

	b.cells[p] = player.Colour()
	b.libertyHint[p] = game.NoPoint

	var captured, singles []game.Point
	for _, nb := range b.neighbours[p] {
		if b.cells[nb] != opp {
			continue
		}
		if !b.blockCaptured(nb) {
			continue
		}
		if b.rules == RulesNoCapture {
			b.cells[p] = game.None
			return errors.WithMessagef(ErrCaptureForbidden, "unable to make %v", game.Move{Player: player, Point: p})
		}
		block := b.BlockOf(nb)
		b.removeBlock(block)
		captured = append(captured, block...)
		if len(block) == 1 {
			singles = append(singles, block[0])
		}
	}

	if len(captured) == 0 && !b.StoneHasLiberty(p) {
		if !b.HasLiberty(b.BlockOf(p)) {
			b.cells[p] = game.None
			return errors.WithMessagef(ErrSuicide, "unable to make %v", game.Move{Player: player, Point: p})
		}
	}

	b.history = append(b.history, moveRecord{point: p, captured: captured, ko: b.ko})
	b.ko = game.NoPoint
	if inEnemyEye && len(singles) == 1 {
		b.ko = singles[0]
	}
	b.toMove = player.Opponent()
	return nil
}

// Pass commits a pass for the side to move.
func (b *Board) Pass() {
	b.history = append(b.history, moveRecord{point: game.Pass, ko: b.ko})
	b.ko = game.NoPoint
	b.toMove = b.toMove.Opponent()
}

// UndoLastMove takes back the most recently committed move or pass, restoring
// captured stones, the ko point and the player to move.
func (b *Board) UndoLastMove() {
	if len(b.history) == 0 {
		return
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.toMove = b.toMove.Opponent()
	b.ko = rec.ko
	if rec.point.IsPass() {
		return
	}
	b.cells[rec.point] = game.None
	b.libertyHint[rec.point] = game.NoPoint
	opp := b.toMove.Opponent().Colour()
	for _, p := range rec.captured {
		b.cells[p] = opp
		b.libertyHint[p] = game.NoPoint
	}
}

// Trial places a stone for the side to move without legality checking,
// capture resolution, or history tracking, flips the side to move, and
// returns a function that restores the previous state. The caller must have
// established legality beforehand; under RulesNoCapture a legal move never
// captures, which is what makes this raw form of apply/undo sound.
func (b *Board) Trial(p game.Point) (restore func()) {
	player := b.toMove
	b.cells[p] = player.Colour()
	b.libertyHint[p] = game.NoPoint
	b.toMove = player.Opponent()
	return func() {
		b.cells[p] = game.None
		b.libertyHint[p] = game.NoPoint
		b.toMove = player
	}
}
