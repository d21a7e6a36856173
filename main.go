package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"runes/config"
	"runes/engine"
	"runes/experiments"
	"runes/game"
	"runes/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML match configuration")
	size := flag.Int("size", 0, "Board size, overrides the configuration")
	experiment := flag.String("experiment", "", "Run an experiment (strategies, parallelization, throughput) instead of a match")
	games := flag.Int("games", 0, "Games per experiment matchup")
	out := flag.String("out", "experiments", "Output directory of experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig(*configPath, *size)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if *experiment != "" {
		opts := experiments.Options{BoardSize: *size, Games: *games, OutDir: *out}
		if err := experiments.Run(*experiment, opts); err != nil {
			log.Fatal().Err(err).Str("experiment", *experiment).Msg("experiment failed")
		}
		return
	}

	if err := play(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}

func loadConfig(path string, size int) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if size > 0 {
		cfg.BoardSize = size
	}
	return cfg, cfg.Validate()
}

// play runs one match on the console, drawing the board after every move.
func play(cfg config.Config, in io.Reader, out io.Writer) error {
	prompt := player.ConsolePrompt(in, out)
	players := make([]player.Player, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		p, err := player.New(pc, prompt)
		if err != nil {
			return errors.WithMessagef(err, "player %q", pc.Name)
		}
		players = append(players, p)
	}

	e := engine.NewLocalEngine(cfg.BoardSize, players,
		engine.WithMaxInvalidMoves(cfg.MaxInvalidMoves),
		engine.WithObserver(func(g *game.Game, move game.Move) {
			mover := players[game.Opponent(g.NextPlayer())]
			fmt.Fprintf(out, "\n%s played %s at %d %d\n%s", mover.Name(), move.Symbol,
				move.Position.Row+1, move.Position.Col+1, g.Board())
		}),
	)
	g := e.Game()
	fmt.Fprint(out, g.Board())

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == game.NoWinner {
		fmt.Fprintln(out, "Draw!")
	} else {
		fmt.Fprintf(out, "%s wins!\n", players[winner].Name())
	}
	return nil
}
