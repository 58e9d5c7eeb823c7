// Package gtp speaks the Go Text Protocol (version 2) over a pair of string
// channels, one line in, one response out.
package gtp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
	"github.com/baduk-engine/sente/policy"
)

// DefaultTimeLimit is the solve budget before a timelimit command changes it.
const DefaultTimeLimit = time.Minute

type Engine struct {
	b   *goban.Board
	pol *policy.Policy

	known map[string]Command

	ch  chan string
	ret chan string

	timeLimit time.Duration
	komi      float64 // accepted and ignored, the rules have no komi

	// Generate picks the move genmove plays. When nil the policy is used.
	Generate func(b *goban.Board, p game.Player) game.Point

	// Recorder, when set, receives a frame after every successful play or
	// genmove. The owner is responsible for flushing it.
	Recorder Recorder

	name, version string
}

// Recorder renders board positions, one call per frame.
type Recorder interface {
	Encode(b *goban.Board, caption string) error
}

func New(b *goban.Board, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		b:         b,
		pol:       policy.New(),
		known:     known,
		timeLimit: DefaultTimeLimit,
		name:      name,
		version:   version,
	}
}

func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Board returns the engine's board.
func (e *Engine) Board() *goban.Board { return e.b }

// SetTimeLimit changes the solve budget. Non-positive durations are ignored.
func (e *Engine) SetTimeLimit(d time.Duration) {
	if d > 0 {
		e.timeLimit = d
	}
}

// Policy returns the move policy used by genmove and policy_moves.
func (e *Engine) Policy() *policy.Policy { return e.pol }

func (e *Engine) start() {
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
	}
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // an ID on its own is ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func (e *Engine) record(caption string) {
	if e.Recorder == nil {
		return
	}
	if err := e.Recorder.Encode(e.b, caption); err != nil {
		log.Warn().Err(err).Msg("dropping frame")
	}
}

func preprocess(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
