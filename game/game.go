// Package game holds the shared vocabulary of the engine: colours, players,
// and the flat point representation of moves on a padded board.
package game

import (
	"fmt"
)

// Colour is the content of a single cell on the board.
type Colour int32

const (
	None Colour = iota
	Black
	White
	Border
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		case Border:
			fmt.Fprint(s, "Border")
		}
	case 's': // used in board rendering
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		case Border:
			fmt.Fprint(s, "#")
		}
	}
}

// IsStone returns true if the colour is an actual stone, rather than an empty
// cell or the border sentinel.
func (cl Colour) IsStone() bool { return cl == Black || cl == White }

// Player represents a player. It's also a colour.
type Player Colour

const (
	BlackP = Player(Black)
	WhiteP = Player(White)
)

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Colour is the colour of the stones the player owns.
func (p Player) Colour() Colour { return Colour(p) }

// Opponent returns the colour of the opponent player.
func (p Player) Opponent() Player {
	switch Colour(p) {
	case White:
		return BlackP
	case Black:
		return WhiteP
	}
	panic("Unreachable")
}

// IsValid checks that a player is indeed valid.
func IsValid(p Player) bool { return Colour(p) == Black || Colour(p) == White }

// Point is a cell index into the padded one dimensional board representation.
// Point 0 and the rest of the border ring are never playable.
//
//	- -1 represents the "pass" move
//	- -2 represents "no point" (an unset move, an absent ko point, ...)
type Point int32

const (
	Pass    Point = -1
	NoPoint Point = -2
)

// IsPass returns true when the point represents a "pass" move.
func (p Point) IsPass() bool { return p == Pass }

func (p Point) Format(s fmt.State, c rune) {
	switch p {
	case Pass:
		fmt.Fprint(s, "pass")
	case NoPoint:
		fmt.Fprint(s, "none")
	default:
		fmt.Fprintf(s, "%d", int32(p))
	}
}

// Coord represents a (row, col) coordinate on the playing area. Both are
// 1-indexed: (1, 1) is the lower left corner of the board.
type Coord struct {
	Row, Col int
}

func (c Coord) Eq(other Coord) bool { return c.Row == other.Row && c.Col == other.Col }

// Move is a tuple indicating the player and the point to be played.
type Move struct {
	Player
	Point
}

// Eq returns true if both are equal.
func (m Move) Eq(other Move) bool { return m.Player == other.Player && m.Point == other.Point }

func (m Move) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", m.Player, m.Point) }
