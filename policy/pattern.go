// Package policy generates moves for simulations: uniformly random over the
// legal moves, or weighted by 3×3 neighbourhood patterns, with eye filling
// and self-atari filters for move list display.
package policy

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

// Weights maps a 3×3 neighbourhood code to its selection weight. Codes absent
// from the map never match, so an empty Weights disables the pattern policy
// without disabling the random fallback.
type Weights map[uint32]float64

// MaxCode is the exclusive upper bound on neighbourhood codes. Eight cells at
// two bits each.
const MaxCode = 1 << 16

// LoadWeights reads a pattern table with one "code weight" pair per line.
// Blank lines and lines starting with '#' are skipped.
func LoadWeights(r io.Reader) (Weights, error) {
	w := make(Weights)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want \"code weight\", got %q", line, text)
		}
		code, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d: bad code", line)
		}
		if code >= MaxCode {
			return nil, errors.Errorf("line %d: code %d out of range", line, code)
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d: bad weight", line)
		}
		if weight <= 0 {
			return nil, errors.Errorf("line %d: weight must be positive, got %v", line, weight)
		}
		w[uint32(code)] = weight
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithMessage(err, "reading pattern weights")
	}
	return w, nil
}

// Neighbourhood encodes the eight cells around p as seen by player, two bits
// per cell: empty 0, own stone 1, opponent stone 2, border 3. Cells are read
// row above first, then the sides, then the row below, so that symmetric
// positions of different colours get distinct codes for each player.
//
// p must be an on-board point.
func Neighbourhood(b *goban.Board, p game.Point, player game.Player) uint32 {
	ns := game.Point(b.Size() + 1)
	positions := [8]game.Point{
		p + ns - 1, p + ns, p + ns + 1,
		p - 1, p + 1,
		p - ns - 1, p - ns, p - ns + 1,
	}
	own := player.Colour()
	opp := player.Opponent().Colour()

	var code uint32
	mul := uint32(1)
	for _, q := range positions {
		switch b.Colour(q) {
		case own:
			code += 1 * mul
		case opp:
			code += 2 * mul
		case game.Border:
			code += 3 * mul
		}
		mul *= 4
	}
	return code
}
