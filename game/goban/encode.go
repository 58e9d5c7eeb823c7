package goban

import (
	"fmt"
	"math/bits"

	"github.com/baduk-engine/sente/game"
)

// MaxEncodeSize is the largest board dimension Encode supports. An 8×8 board
// holds 64 base-3 digits, which still fits the 128-bit key; a 9×9 board would
// not.
const MaxEncodeSize = 8

// Key is a compact integer encoding of a board's full cell contents. Every
// on-board cell contributes one base-3 digit (empty 0, black 1, white 2) in a
// fixed canonical order, accumulated into a 128-bit integer. Keys are
// comparable and usable as map keys.
//
// The key is a pure function of cell contents: it deliberately ignores the ko
// point and the move history.
type Key struct {
	Hi, Lo uint64
}

// push returns k*3 + digit over the full 128 bits.
func (k Key) push(digit uint64) Key {
	hi, lo := bits.Mul64(k.Lo, 3)
	lo, carry := bits.Add64(lo, digit, 0)
	return Key{Hi: k.Hi*3 + hi + carry, Lo: lo}
}

func (k Key) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%016x%016x", k.Hi, k.Lo) }

// Encode maps the board configuration to its position key. Two boards of the
// same size with identical cell contents always yield the same key, and
// structurally different fills always differ.
func (b *Board) Encode() Key {
	if b.size > MaxEncodeSize {
		panic(fmt.Sprintf("cannot encode a size %d board; the key holds at most %d cells", b.size, MaxEncodeSize*MaxEncodeSize))
	}
	var k Key
	for row := 1; row <= int(b.size); row++ {
		start := b.rowStart(row)
		for col := 0; col < int(b.size); col++ {
			k = k.push(uint64(b.cells[start+game.Point(col)]))
		}
	}
	return k
}
