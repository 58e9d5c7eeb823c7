package gtp

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/baduk-engine/sente/game"
	"github.com/baduk-engine/sente/game/goban"
	"github.com/baduk-engine/sente/solver"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)

	var buf bytes.Buffer
	for _, c := range cmds {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string       { close(e.ch); return "QUIT" }
func clearBoard(e *Engine) string { e.b.Reset(e.b.Size()); return "" }
func showboard(e *Engine) string  { return fmt.Sprintf("\n%v\n", e.b) }
func undo(e *Engine) string       { e.b.UndoLastMove(); return "" }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if err := e.b.Reset(size); err != nil {
		return "", errors.New("unacceptable size")
	}
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse komi argument")
	}
	e.komi = k // accept komi even if ridiculous, GTP says so
	return "", nil
}

func rules(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		switch e.b.Rules() {
		case goban.RulesCapture:
			return "capture", nil
		default:
			return "nocapture", nil
		}
	}
	switch args[0] {
	case "nocapture":
		e.b.SetRules(goban.RulesNoCapture)
	case "capture":
		e.b.SetRules(goban.RulesCapture)
	default:
		return "", errors.Errorf("unknown rule set %q", args[0])
	}
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	player, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	p, err := parseVertex(e.b, args[1])
	if err != nil {
		return "", err
	}
	if p.IsPass() {
		e.b.SetToMove(player)
		e.b.Pass()
		return "", nil
	}
	if err := e.b.Play(p, player); err != nil {
		return "", err
	}
	e.record(fmt.Sprintf("Move %d: %s %s", e.b.MoveNumber(), colourString(player), vertexString(e.b, p)))
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	player, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	e.b.SetToMove(player)

	var mv game.Point
	if e.Generate != nil {
		mv = e.Generate(e.b, player)
	} else {
		mv = e.pol.Generate(e.b)
	}
	if mv.IsPass() {
		e.b.Pass()
		return "pass", nil
	}
	if err := e.b.Play(mv, player); err != nil {
		return "", err
	}
	e.record(fmt.Sprintf("Move %d: %s %s", e.b.MoveNumber(), colourString(player), vertexString(e.b, mv)))
	return vertexString(e.b, mv), nil
}

func timeLimit(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"timelimit\"")
	}
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil || seconds <= 0 {
		return "", errors.Errorf("invalid time limit %q", args[0])
	}
	e.timeLimit = time.Duration(seconds * float64(time.Second))
	return "", nil
}

// solve reports the winner under perfect play, "unknown" when the search ran
// out of time, and the winning first move when the solved player wins.
func solve(e *Engine, args []string) (string, error) {
	player := e.b.ToMove()
	if len(args) > 0 {
		var err error
		if player, err = parseColour(args[0]); err != nil {
			return "", err
		}
	}
	res, err := solver.New(e.b).Solve(context.Background(), player, e.timeLimit)
	if err != nil {
		return "", err
	}
	if res.TimedOut {
		return "unknown", nil
	}
	if res.Win {
		if res.WinningMove == game.NoPoint {
			return colourString(player), nil
		}
		return colourString(player) + " " + vertexString(e.b, res.WinningMove), nil
	}
	return colourString(player.Opponent()), nil
}

func policyMoves(e *Engine, args []string) (string, error) {
	moves, label := e.pol.Moves(e.b)
	var buf bytes.Buffer
	buf.WriteString(label)
	for _, mv := range moves {
		buf.WriteByte(' ')
		buf.WriteString(vertexString(e.b, mv))
	}
	return buf.String(), nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"undo":             stdlib(undo),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"komi":          stdlib2(komi),
		"rules":         stdlib2(rules),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"timelimit":     stdlib2(timeLimit),
		"solve":         stdlib2(solve),
		"policy_moves":  stdlib2(policyMoves),
	}
}
