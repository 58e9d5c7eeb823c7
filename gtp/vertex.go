package gtp

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
)

// columns are lettered A upwards with I skipped, as GTP prescribes
const columnLetters = "ABCDEFGHJKLMNOPQRST"

func parseColour(s string) (game.Player, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.BlackP, nil
	case "w", "white":
		return game.WhiteP, nil
	}
	return 0, errors.Errorf("invalid color %q", s)
}

func colourString(p game.Player) string {
	if p == game.BlackP {
		return "b"
	}
	return "w"
}

func parseVertex(b *goban.Board, s string) (game.Point, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "PASS" {
		return game.Pass, nil
	}
	if len(s) < 2 {
		return game.NoPoint, errors.Errorf("invalid vertex %q", s)
	}
	col := strings.IndexByte(columnLetters, s[0]) + 1
	if col == 0 {
		return game.NoPoint, errors.Errorf("invalid vertex %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return game.NoPoint, errors.Errorf("invalid vertex %q", s)
	}
	if row < 1 || row > b.Size() || col > b.Size() {
		return game.NoPoint, errors.Errorf("vertex %q outside the board", s)
	}
	return b.PointOf(row, col), nil
}

func vertexString(b *goban.Board, p game.Point) string {
	if p.IsPass() {
		return "pass"
	}
	c := b.CoordOf(p)
	return string(columnLetters[c.Col-1]) + strconv.Itoa(c.Row)
}
