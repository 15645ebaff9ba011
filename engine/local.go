package engine

import (
	"errors"
	"time"

	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/gamemaster"
	"minichess/meta"
	"minichess/player"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// LocalEngine alternates agents on one game, starting with the first player.
// Turn order lives here, not in the game master.
type LocalEngine struct {
	Master  *gamemaster.GameMaster
	Players []game.Player
	Agents  []player.Agent

	maxTurns int
	metrics  metrics.Collector
}

func NewLocalEngine(gm *gamemaster.GameMaster, players []game.Player, agents []player.Agent, options ...Option) *LocalEngine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	e := &LocalEngine{ // Default values
		Master:   gm,
		Players:  players,
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop. It stops early if an agent returns a move the
// game master rejects with a board fault.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	e.metrics.Start(e.Master.ID, string(e.Players[0]))
	log.Info().Msgf("player %s is starting", e.Players[0])

	stalled := ""
	for turn := 0; turn < e.maxTurns; turn++ {
		idx := turn % len(e.Players)
		current := e.Players[idx]

		start := time.Now()
		move, ok := e.Agents[idx].FindMove(e.Master, current)
		if !ok {
			log.Info().Msgf("player %s has no legal move after %d turns", current, turn)
			stalled = string(current)
			break
		}

		u, err := e.Master.Move(current, move.From, move.To)
		if err != nil {
			if game.IsVerdict(err) {
				log.Warn().Msgf("agent %s proposed an illegal move %s: %v", e.Agents[idx].Name(), move, err)
				e.metrics.AddRejected()
				continue
			}
			if errors.Is(err, gamemaster.ErrFault) {
				log.Error().Err(err).Msg("stopping game")
			}
			break
		}

		mm := metrics.MoveMetric{
			Step:     u.Step,
			Player:   string(current),
			Piece:    u.Piece.String(),
			From:     u.Move.From.String(),
			To:       u.Move.To.String(),
			Duration: time.Since(start),
		}
		if u.Captured != nil {
			mm.Captured = u.Captured.String()
		}
		e.metrics.AddMove(mm)
	}

	return e.metrics.Complete(stalled, len(e.Master.Pieces()))
}
