// Command sente is a GTP engine for small-board play and solving. It reads
// GTP from stdin by default, or runs an interactive shell with -shell.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/baduk-engine/sente/encoding/gif"
	"github.com/baduk-engine/sente/game/goban"
	"github.com/baduk-engine/sente/gtp"
	"github.com/baduk-engine/sente/internal/config"
	"github.com/baduk-engine/sente/policy"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "path to config file")
	shell      = flag.Bool("shell", false, "run an interactive shell instead of reading GTP from stdin")
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Setup(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	b, err := goban.New(cfg.BoardSize)
	if err != nil {
		log.Fatal().Err(err).Msg("creating board")
	}
	b.SetRules(cfg.GobanRules())

	e := gtp.New(b, "sente", version, nil)
	e.SetTimeLimit(cfg.TimeLimit)

	pol := e.Policy()
	pol.CheckSelfAtari = cfg.CheckSelfAtari
	if cfg.PatternWeights != "" {
		f, err := os.Open(cfg.PatternWeights)
		if err != nil {
			log.Fatal().Err(err).Msg("opening pattern weights")
		}
		w, err := policy.LoadWeights(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("loading pattern weights")
		}
		pol.Weights = w
		log.Info().Int("patterns", len(w)).Msg("pattern policy enabled")
	}

	var enc *gif.Encoder
	if cfg.RecordGIF != "" {
		f, err := os.Create(cfg.RecordGIF)
		if err != nil {
			log.Fatal().Err(err).Msg("creating game record")
		}
		defer f.Close()
		enc = gif.NewEncoder(2000, 1200, f)
		e.Recorder = enc
	}

	ch, ret := e.Start()
	if *shell {
		runShell(ch, ret)
	} else {
		runPipe(ch, ret)
	}

	if enc != nil {
		if err := enc.Flush(); err != nil {
			log.Error().Err(err).Msg("writing game record")
		}
	}
}

func runPipe(ch, ret chan string) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ch <- line
		fmt.Print(<-ret)
		if isQuit(line) {
			return
		}
	}
}

func runShell(ch, ret chan string) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31msente>\033[0m ",
		HistoryFile: "/tmp/sente_readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ch <- line
		fmt.Print(<-ret)
		if isQuit(line) {
			return
		}
	}
}

// isQuit reports whether line is the GTP quit command, with or without an id.
func isQuit(line string) bool {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return false
	}
	if _, err := strconv.Atoi(tokens[0]); err == nil {
		tokens = tokens[1:]
	}
	return len(tokens) > 0 && tokens[0] == "quit"
}
