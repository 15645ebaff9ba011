package main

import (
	"flag"
	"os"
	"time"

	"minichess/experiments"
	"minichess/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.GAMES, "Number of self-play games")
	turns := flag.Int("turns", meta.MAX_TURNS, "Maximum turns per game")
	seed := flag.Uint64("seed", 1, "Seed for the random agents")
	capture := flag.Bool("capture", false, "Let moves end on an enemy piece")
	lknight := flag.Bool("lknight", false, "Restrict knights to L-shaped jumps")
	out := flag.String("out", "", "Directory for CSV records (empty to skip)")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	result, err := experiments.RunSelfPlay(experiments.Config{
		Games:         *games,
		MaxTurns:      *turns,
		Seed:          *seed,
		Capture:       *capture,
		LShapedKnight: *lknight,
		OutDir:        *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	if result.Dir != "" {
		log.Info().Msgf("records written to %s", result.Dir)
	}
}
