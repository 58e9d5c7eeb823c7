package gtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baduk-engine/sente/game/goban"
)

func testEngine(t *testing.T, size int) (*Engine, chan string, chan string) {
	t.Helper()
	b, err := goban.New(size)
	require.NoError(t, err)
	e := New(b, "xx", "1", nil)
	ch, ret := e.Start()
	return e, ch, ret
}

func Test_General(t *testing.T) {
	assert := assert.New(t)
	_, ch, ret := testEngine(t, 3)
	var x string

	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "12 version"
	x = <-ret
	assert.Equal("= 12 1\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)

	ch <- "protocol_version"
	x = <-ret
	assert.Equal("= 2\n\n", x)
}

func Test_BoardSize(t *testing.T) {
	assert := assert.New(t)
	e, ch, ret := testEngine(t, 3)
	var x string

	ch <- "boardsize 5"
	x = <-ret
	assert.Equal("= \n\n", x)
	assert.Equal(5, e.Board().Size())

	ch <- "boardsize 100"
	x = <-ret
	assert.Equal("? unacceptable size\n\n", x)

	ch <- "boardsize bogus"
	x = <-ret
	assert.Contains(x, "? ")
}

func Test_PlayAndUndo(t *testing.T) {
	assert := assert.New(t)
	e, ch, ret := testEngine(t, 3)
	var x string

	ch <- "play b a1"
	x = <-ret
	assert.Equal("= \n\n", x)
	assert.Equal(1, e.Board().MoveNumber())

	ch <- "play w a1"
	x = <-ret
	assert.Contains(x, "? ")

	ch <- "play w pass"
	x = <-ret
	assert.Equal("= \n\n", x)

	ch <- "undo"
	<-ret
	ch <- "undo"
	<-ret
	assert.Equal(0, e.Board().MoveNumber())

	ch <- "play q9 b"
	x = <-ret
	assert.Contains(x, "? ")
}

func Test_Genmove(t *testing.T) {
	assert := assert.New(t)
	e, ch, ret := testEngine(t, 3)

	ch <- "genmove b"
	x := <-ret
	assert.Contains(x, "= ")
	assert.Equal(1, e.Board().MoveNumber())
}

func Test_Solve(t *testing.T) {
	assert := assert.New(t)
	_, ch, ret := testEngine(t, 2)
	var x string

	// the first player makes the last move on an empty 2x2 board
	ch <- "solve b"
	x = <-ret
	assert.Equal("= b A1\n\n", x)

	// white is not on move; the position as it stands is a black win
	ch <- "solve w"
	x = <-ret
	assert.Equal("= b\n\n", x)

	ch <- "play b a1"
	<-ret
	ch <- "solve w"
	x = <-ret
	assert.Equal("= b\n\n", x)
}

func Test_TimeLimit(t *testing.T) {
	assert := assert.New(t)
	_, ch, ret := testEngine(t, 3)
	var x string

	ch <- "timelimit 5"
	x = <-ret
	assert.Equal("= \n\n", x)

	ch <- "timelimit -1"
	x = <-ret
	assert.Contains(x, "? ")
}

func Test_Rules(t *testing.T) {
	assert := assert.New(t)
	e, ch, ret := testEngine(t, 3)
	var x string

	ch <- "rules"
	x = <-ret
	assert.Equal("= nocapture\n\n", x)

	ch <- "rules capture"
	<-ret
	assert.Equal(goban.RulesCapture, e.Board().Rules())

	ch <- "solve b"
	x = <-ret
	assert.Contains(x, "? ")
}

func Test_PolicyMoves(t *testing.T) {
	assert := assert.New(t)
	_, ch, ret := testEngine(t, 2)

	ch <- "policy_moves"
	x := <-ret
	assert.Equal("= Random A1 B1 A2 B2\n\n", x)
}

type frameCounter struct {
	frames int
	last   string
}

func (f *frameCounter) Encode(b *goban.Board, caption string) error {
	f.frames++
	f.last = caption
	return nil
}

func Test_Recorder(t *testing.T) {
	assert := assert.New(t)
	e, ch, ret := testEngine(t, 3)
	rec := &frameCounter{}
	e.Recorder = rec

	ch <- "play b a1"
	<-ret
	ch <- "genmove w"
	<-ret

	assert.Equal(2, rec.frames)
	assert.Contains(rec.last, "Move 2: w ")
}

func Test_Quit(t *testing.T) {
	assert := assert.New(t)
	_, ch, ret := testEngine(t, 3)

	ch <- "quit"
	x := <-ret
	assert.Equal("= QUIT\n\n", x)
}
