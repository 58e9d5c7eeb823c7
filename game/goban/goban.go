// Package goban implements the board engine: a padded one dimensional grid
// with legality checking, connected block discovery, liberty counting and
// capture detection.
//
// The playing area of an N×N board is embedded in a flat array of
// N*N + 3*(N+1) cells. Rows are laid out with a stride of N+1 and the cells
// outside the playing area hold a border sentinel, so neighbour arithmetic
// never needs bounds checks. Point 0 and the border ring are never playable.
package goban

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/baduk-engine/sente/game"
)

const (
	// MinSize and MaxSize bound the supported board dimensions.
	MinSize = 2
	MaxSize = 19
)

// Rules selects how the board treats capturing moves.
type Rules uint8

const (
	// RulesNoCapture forbids any move that would capture, in addition to
	// suicide. A player left without a legal move loses; the last player to
	// move wins. These are the rules the solver searches under.
	RulesNoCapture Rules = iota

	// RulesCapture resolves captures the usual way: neighbouring opponent
	// blocks left without liberties are removed, and a single stone capture
	// inside an opponent eye sets a ko point that forbids immediate
	// recapture.
	RulesCapture
)

// moveRecord is one committed move, with everything needed to take it back.
type moveRecord struct {
	point    game.Point // Pass for a pass
	captured []game.Point
	ko       game.Point // the ko point before the move
}

// Board owns the grid, the per point colour, the current player and the move
// history. A Board is not safe for concurrent use.
type Board struct {
	size     int32
	ns       int32 // north-south stride, size+1
	maxPoint int32

	cells       []game.Colour
	neighbours  [][]game.Point // precomputed on-board neighbours, nil for border cells
	libertyHint []game.Point   // last known liberty per stone, NoPoint when unknown

	toMove  game.Player
	ko      game.Point
	history []moveRecord
	rules   Rules
}

// New creates an empty board of the given size. Black moves first.
func New(size int) (*Board, error) {
	b := new(Board)
	if err := b.Reset(size); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset reinitializes the board to an empty position of the given size,
// clearing history and ko, with Black to move. The rule set is kept.
func (b *Board) Reset(size int) error {
	if size < MinSize || size > MaxSize {
		return errors.Errorf("board size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	b.size = int32(size)
	b.ns = int32(size + 1)
	b.maxPoint = int32(size*size + 3*(size+1))

	b.cells = make([]game.Colour, b.maxPoint)
	for i := range b.cells {
		b.cells[i] = game.Border
	}
	for row := 1; row <= size; row++ {
		start := b.rowStart(row)
		for col := 0; col < size; col++ {
			b.cells[start+game.Point(col)] = game.None
		}
	}
	b.initNeighbours()

	b.libertyHint = make([]game.Point, b.maxPoint)
	for i := range b.libertyHint {
		b.libertyHint[i] = game.NoPoint
	}

	b.toMove = game.BlackP
	b.ko = game.NoPoint
	b.history = b.history[:0]
	return nil
}

func (b *Board) rowStart(row int) game.Point {
	return game.Point(int32(row)*b.ns + 1)
}

func (b *Board) initNeighbours() {
	b.neighbours = make([][]game.Point, b.maxPoint)
	for p := game.Point(0); int32(p) < b.maxPoint; p++ {
		if b.cells[p] == game.Border {
			continue
		}
		nbs := make([]game.Point, 0, 4)
		for _, nb := range [4]game.Point{p - 1, p + 1, p - game.Point(b.ns), p + game.Point(b.ns)} {
			if nb >= 0 && int32(nb) < b.maxPoint && b.cells[nb] != game.Border {
				nbs = append(nbs, nb)
			}
		}
		b.neighbours[p] = nbs
	}
}

// Size returns the board dimension N.
func (b *Board) Size() int { return int(b.size) }

// Rules returns the active rule set.
func (b *Board) Rules() Rules { return b.rules }

// SetRules selects the rule set. It does not alter the position.
func (b *Board) SetRules(r Rules) { b.rules = r }

// ToMove returns the player whose turn it is.
func (b *Board) ToMove() game.Player { return b.toMove }

// SetToMove overrides the player to move. Meant for position setup.
func (b *Board) SetToMove(p game.Player) {
	if !game.IsValid(p) {
		panic(fmt.Sprintf("invalid player %v", p))
	}
	b.toMove = p
}

// KoPoint returns the point forbidden for immediate recapture, or NoPoint.
func (b *Board) KoPoint() game.Point { return b.ko }

// SetKoPoint overrides the ko point. Meant for position setup.
func (b *Board) SetKoPoint(p game.Point) { b.ko = p }

// Winner reports the winner under the terminal rule: when the side to move
// has no legal continuation, the player who made the last move wins.
func (b *Board) Winner() game.Player { return b.toMove.Opponent() }

// PointOf maps a 1-indexed (row, col) coordinate to its padded flat index.
func (b *Board) PointOf(row, col int) game.Point {
	if row < 1 || row > int(b.size) || col < 1 || col > int(b.size) {
		panic(fmt.Sprintf("coordinate (%d, %d) off a size %d board", row, col, b.size))
	}
	return game.Point(int32(row)*b.ns + int32(col))
}

// CoordOf maps a playable point back to its 1-indexed (row, col) coordinate.
func (b *Board) CoordOf(p game.Point) game.Coord {
	if !b.onBoard(p) {
		panic(fmt.Sprintf("point %v is not on the board", p))
	}
	return game.Coord{Row: int(int32(p) / b.ns), Col: int(int32(p) % b.ns)}
}

func (b *Board) onBoard(p game.Point) bool {
	return p >= 0 && int32(p) < b.maxPoint && b.cells[p] != game.Border
}

// Colour returns the content of the cell at p.
func (b *Board) Colour(p game.Point) game.Colour { return b.cells[p] }

// NeighboursOf returns the precomputed on-board orthogonal neighbours of p.
// Border points have none. The returned slice must not be mutated.
func (b *Board) NeighboursOf(p game.Point) []game.Point { return b.neighbours[p] }

// diagNeighbours returns the four diagonal neighbours of p, on board or not.
func (b *Board) diagNeighbours(p game.Point) [4]game.Point {
	ns := game.Point(b.ns)
	return [4]game.Point{p - ns - 1, p - ns + 1, p + ns - 1, p + ns + 1}
}

// EmptyPoints returns the currently empty points in index order.
func (b *Board) EmptyPoints() []game.Point {
	var empties []game.Point
	for p := game.Point(0); int32(p) < b.maxPoint; p++ {
		if b.cells[p] == game.None {
			empties = append(empties, p)
		}
	}
	return empties
}

// Stones returns the points occupied by the given colour, in index order.
func (b *Board) Stones(c game.Colour) []game.Point {
	var pts []game.Point
	for p := game.Point(0); int32(p) < b.maxPoint; p++ {
		if b.cells[p] == c {
			pts = append(pts, p)
		}
	}
	return pts
}

// History returns the points of the committed moves, in order.
func (b *Board) History() []game.Point {
	pts := make([]game.Point, len(b.history))
	for i, rec := range b.history {
		pts[i] = rec.point
	}
	return pts
}

// MoveNumber returns the count of committed moves.
func (b *Board) MoveNumber() int { return len(b.history) }

// Put places (or clears) a cell directly, bypassing every rule. Meant for
// position setup in tests and front ends; it does not touch history or ko.
func (b *Board) Put(row, col int, c game.Colour) {
	p := b.PointOf(row, col)
	b.cells[p] = c
	b.libertyHint[p] = game.NoPoint
}

// Load fills the playing area from a row-major, unpadded cell slice of
// length Size()*Size(). Row 1 comes first. History and ko are cleared.
func (b *Board) Load(cells []game.Colour) error {
	if len(cells) != int(b.size*b.size) {
		return errors.Errorf("position has %d cells, want %d", len(cells), b.size*b.size)
	}
	for i, c := range cells {
		if c != game.None && !c.IsStone() {
			return errors.Errorf("cell %d holds %v", i, c)
		}
		row, col := i/int(b.size)+1, i%int(b.size)+1
		b.Put(row, col, c)
	}
	b.ko = game.NoPoint
	b.history = b.history[:0]
	return nil
}

// Position returns a row-major, unpadded copy of the playing area.
func (b *Board) Position() []game.Colour {
	cells := make([]game.Colour, 0, b.size*b.size)
	for row := 1; row <= int(b.size); row++ {
		start := b.rowStart(row)
		cells = append(cells, b.cells[start:start+game.Point(b.size)]...)
	}
	return cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:     b.size,
		ns:       b.ns,
		maxPoint: b.maxPoint,
		toMove:   b.toMove,
		ko:       b.ko,
		rules:    b.rules,
	}
	clone.cells = make([]game.Colour, len(b.cells))
	copy(clone.cells, b.cells)
	clone.libertyHint = make([]game.Point, len(b.libertyHint))
	copy(clone.libertyHint, b.libertyHint)
	clone.neighbours = b.neighbours // immutable after Reset, safe to share
	clone.history = make([]moveRecord, len(b.history))
	copy(clone.history, b.history)
	return clone
}

// Format implements fmt.Formatter. Row Size() is printed first so that the
// board appears the way a player facing it would see it.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for row := int(b.size); row >= 1; row-- {
			start := b.rowStart(row)
			fmt.Fprint(s, "⎢ ")
			for col := 0; col < int(b.size); col++ {
				fmt.Fprintf(s, "%s ", b.cells[start+game.Point(col)])
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}
