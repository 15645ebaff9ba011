package experiments

import (
	"fmt"

	"minichess/engine"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/gamemaster"
	"minichess/meta"
	"minichess/player"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Games         int
	MaxTurns      int
	Seed          uint64
	Capture       bool
	LShapedKnight bool
	OutDir        string // "" skips writing records
}

func DefaultConfig() Config {
	return Config{
		Games:    meta.GAMES,
		MaxTurns: meta.MAX_TURNS,
		Seed:     1,
	}
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string
}

func (c Config) validator() *game.Validator {
	options := []game.ValidatorOption{}
	if c.Capture {
		options = append(options, game.WithCapture())
	}
	if c.LShapedKnight {
		options = append(options, game.WithRule(game.Knight, game.LShapedKnightRule))
	}
	return game.NewValidator(options...)
}

// RunSelfPlay plays cfg.Games games between two random agents on the standard
// layout and optionally stores the records as CSV under cfg.OutDir.
func RunSelfPlay(cfg Config) (Result, error) {
	players := []game.Player{meta.PLAYER_ONE, meta.PLAYER_TWO}
	configs := []metrics.AgentConfig{
		{ID: 1, Agent: "random", Seed: cfg.Seed},
		{ID: 2, Agent: "random", Seed: cfg.Seed + 1},
	}
	manager := gamemaster.NewManager(gamemaster.WithValidator(cfg.validator()))

	log.Info().Msgf("starting self-play experiment with %d games...", cfg.Games)

	result := Result{}
	for i := 0; i < cfg.Games; i++ {
		gm, err := manager.NewGame(players[0], players[1])
		if err != nil {
			return result, fmt.Errorf("failed to create game %d: %w", i+1, err)
		}

		// Different seeds per game, reproducible per experiment
		agents := []player.Agent{
			player.NewRandom(configs[0].Seed + uint64(2*i)),
			player.NewRandom(configs[1].Seed + uint64(2*i)),
		}
		e := engine.NewLocalEngine(gm, players, agents,
			engine.WithMaxTurns(cfg.MaxTurns), engine.WithMetrics(metrics.NewCollector()))

		gameMetric, moveMetrics := e.Run()
		result.Games = append(result.Games, metrics.GameRecord{
			Number:     i + 1,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}
		if err := manager.Delete(gm.ID); err != nil {
			return result, err
		}

		log.Info().Msgf("completed game %d of %d: %d moves, %d captures, %d pieces left",
			i+1, cfg.Games, gameMetric.TotalMoves, gameMetric.Captures, gameMetric.PiecesLeft)
	}

	log.Info().Msg("completed self-play experiment")

	if cfg.OutDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(cfg.OutDir, "selfplay")
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return result, nil
}
