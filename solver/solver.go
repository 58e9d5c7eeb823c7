// Package solver answers "does the side to move win?" for small boards with
// an exhaustive boolean negamax over the no-capture ruleset. Search results
// are memoised in a per-solve transposition cache keyed by position encoding,
// and a wall-clock budget degrades any unfinished subtree to a conservative
// loss so the caller always gets an answer.
package solver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

var (
	// ErrBoardTooLarge is returned when the board exceeds what the position
	// encoder can represent.
	ErrBoardTooLarge = errors.New("board too large to solve")

	// ErrRuleset is returned for boards whose ruleset allows captures. The
	// search relies on the board only ever gaining stones, which keeps the
	// game tree acyclic.
	ErrRuleset = errors.New("solver requires the no-capture ruleset")
)

// Result is the outcome of a solve. When TimedOut is set the search did not
// finish inside its budget and Win is a conservative false. WinningMove is
// set only when the solved player is the side to move and wins.
type Result struct {
	Win         bool
	TimedOut    bool
	WinningMove game.Point
	Nodes       uint64
	Elapsed     time.Duration
}

// Solver runs boolean negamax searches over a board. A Solver is not safe for
// concurrent use; each Solve call works on its own clone of the board, so the
// board handed to New is never mutated.
type Solver struct {
	b  *goban.Board
	tt *Table

	deadline time.Time
	stop     atomic.Bool
	timedOut bool
	nodes    atomic.Uint64

	trace *Trace
}

// New returns a Solver for b.
func New(b *goban.Board) *Solver {
	return &Solver{b: b}
}

// SetTrace makes subsequent solves record their search tree into t. Pass nil
// to disable tracing.
func (s *Solver) SetTrace(t *Trace) { s.trace = t }

// Solve determines whether player wins with perfect play from the current
// position, spending at most budget of wall-clock time. The position is
// searched as it stands, whoever is to move; asking about the player who is
// not on move answers whether their opponent's best play still loses. With
// exactly one stone on an odd-sized board the mirror of that stone is
// searched first.
//
// Solve panics if player is not a valid player.
func (s *Solver) Solve(ctx context.Context, player game.Player, budget time.Duration) (Result, error) {
	return s.SolveFrom(ctx, player, budget, s.mirrorCandidate())
}

// SolveFrom is Solve with an explicit first candidate. The candidate is
// searched before any other point when it is a legal move; pass NoPoint for
// no preference.
func (s *Solver) SolveFrom(ctx context.Context, player game.Player, budget time.Duration, candidate game.Point) (Result, error) {
	if !game.IsValid(player) {
		panic(errors.Errorf("cannot solve for %v", player))
	}
	if s.b.Size() > goban.MaxEncodeSize {
		return Result{}, errors.WithMessagef(ErrBoardTooLarge, "size %d exceeds %d", s.b.Size(), goban.MaxEncodeSize)
	}
	if s.b.Rules() != goban.RulesNoCapture {
		return Result{}, ErrRuleset
	}

	b := s.b.Clone()

	start := time.Now()
	s.deadline = start.Add(budget)
	if d, ok := ctx.Deadline(); ok && d.Before(s.deadline) {
		s.deadline = d
	}
	s.tt = newTable()
	s.timedOut = false
	s.stop.Store(false)
	s.nodes.Store(0)

	g := &errgroup.Group{}
	done := make(chan bool)

	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		ctxDone := ctx.Done()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ctxDone:
				s.stop.Store(true)
				ctxDone = nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	var toMoveWins bool
	var winningMove game.Point
	g.Go(func() error {
		toMoveWins, winningMove = s.rootSearch(b, candidate)
		done <- true
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Win:         toMoveWins == (player == b.ToMove()),
		TimedOut:    s.timedOut,
		WinningMove: game.NoPoint,
		Nodes:       s.nodes.Load(),
		Elapsed:     time.Since(start),
	}
	if toMoveWins && player == b.ToMove() {
		res.WinningMove = winningMove
	}
	if res.TimedOut {
		res.Win = false
		res.WinningMove = game.NoPoint
	}
	log.Info().
		Bool("win", res.Win).
		Bool("timed-out", res.TimedOut).
		Uint64("nodes", res.Nodes).
		Uint64("ttable-lookups", s.tt.lookups).
		Uint64("ttable-hits", s.tt.hits).
		Uint64("ttable-stores", s.tt.stores).
		Float64("time-elapsed-sec", res.Elapsed.Seconds()).
		Msg("solve-returning")
	return res, nil
}

// rootSearch tries candidate first, then every other legal move, and returns
// whether the side to move wins along with the first winning move found.
func (s *Solver) rootSearch(b *goban.Board, candidate game.Point) (bool, game.Point) {
	player := b.ToMove()
	if candidate != game.NoPoint && b.IsLegal(candidate, player) {
		if s.searchChild(b, candidate) {
			return true, candidate
		}
	}
	for _, p := range b.EmptyPoints() {
		if p == candidate || !b.IsLegal(p, player) {
			continue
		}
		if s.searchChild(b, p) {
			return true, p
		}
	}
	return false, game.NoPoint
}

// negamax reports whether the side to move wins. A player with no legal move
// has lost, which makes the empty loop below double as the terminal check.
func (s *Solver) negamax(b *goban.Board) (win bool) {
	s.nodes.Add(1)
	if s.stop.Load() || time.Now().After(s.deadline) {
		s.timedOut = true
		return false
	}
	k := b.Encode()
	if s.trace != nil {
		s.trace.enter(k)
		defer func() { s.trace.leave(k, win) }()
	}
	if hit, ok := s.tt.Lookup(k); ok {
		return hit
	}
	for _, p := range b.EmptyPoints() {
		if !b.IsLegal(p, b.ToMove()) {
			continue
		}
		if s.searchChild(b, p) {
			win = true
			break
		}
	}
	s.tt.Store(k, win)
	return win
}

// searchChild plays p for the side to move, searches the reply, and undoes
// the move. Legal no-capture moves never remove stones, so a plain
// place-and-restore is enough.
func (s *Solver) searchChild(b *goban.Board, p game.Point) bool {
	restore := b.Trial(p)
	defer restore()
	return !s.negamax(b)
}

// mirrorCandidate returns the point mirror of the single stone on an
// odd-sized board through the centre, or NoPoint when the heuristic does not
// apply. Answering the first move with its mirror image is a strong opening
// on small odd boards.
func (s *Solver) mirrorCandidate() game.Point {
	size := s.b.Size()
	if size%2 == 0 {
		return game.NoPoint
	}
	stones := append(s.b.Stones(game.Black), s.b.Stones(game.White)...)
	if len(stones) != 1 {
		return game.NoPoint
	}
	m := (size + 1) / 2
	mid := s.b.PointOf(m, m)
	mirror := mid + mid - stones[0]
	if mirror == stones[0] {
		return game.NoPoint
	}
	return mirror
}
