package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"minichess/game"

	"github.com/rs/zerolog/log"
)

// ErrFault marks a move that passed validation but could not be applied
// because the board bookkeeping disagreed. It always wraps a game board error.
var ErrFault = errors.New("board fault")

type Option func(gm *GameMaster)

func WithValidator(v *game.Validator) Option {
	return func(gm *GameMaster) {
		if v != nil {
			gm.validator = v
		}
	}
}

func WithIDGenerator(ids *game.IDGenerator) Option {
	return func(gm *GameMaster) {
		if ids != nil {
			gm.ids = ids
		}
	}
}

func WithLayout(layout Layout) Option {
	return func(gm *GameMaster) {
		gm.layout = layout
	}
}

// Update records one applied move.
type Update struct {
	Step     int         `json:"step"`
	Player   game.Player `json:"player"`
	Move     game.Move   `json:"move"`
	Piece    game.Piece  `json:"piece"`
	Captured *game.Piece `json:"captured,omitempty"`
}

// GameMaster validates moves and applies them to its board. Every call is
// serialized on one lock per board, so a capture and the relocation that
// follows are never observed apart.
type GameMaster struct {
	ID string

	mu        sync.Mutex
	board     *game.Board
	validator *game.Validator
	ids       *game.IDGenerator
	layout    Layout
	history   []Update
}

func newGameMaster(options ...Option) *GameMaster {
	gm := &GameMaster{ // Default values
		validator: game.NewValidator(),
		ids:       game.NewIDGenerator(),
		layout:    StandardLayout(),
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// NewGameMaster drives an already built board.
func NewGameMaster(board *game.Board, options ...Option) *GameMaster {
	gm := newGameMaster(options...)
	gm.board = board
	return gm
}

// NewGame builds a board from the layout (StandardLayout unless WithLayout is
// given) for two players.
func NewGame(player1, player2 game.Player, options ...Option) (*GameMaster, error) {
	gm := newGameMaster(options...)
	board, err := gm.layout.Build(gm.ids, player1, player2)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	gm.board = board
	return gm, nil
}

// Move validates and applies a move for player. A rejected move returns its
// game.MoveError verdict and leaves the board as it was.
func (gm *GameMaster) Move(player game.Player, start, end game.Coordinate) (Update, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.validator.Validate(gm.board, player, start, end); err != nil {
		log.Debug().Msgf("rejected %s %s->%s: %v", player, start, end, err)
		return Update{}, err
	}

	mover, _ := gm.board.PieceAt(start)
	if !gm.validator.RulesAbiding(mover.Kind, start, end) {
		return Update{}, game.ErrNotRuleAbiding
	}

	captured, err := gm.board.Move(start, end)
	if err != nil {
		log.Error().Err(err).Msgf("failed to apply %s %s->%s", player, start, end)
		return Update{}, fmt.Errorf("%w: %w", ErrFault, err)
	}

	u := Update{
		Step:     len(gm.history) + 1,
		Player:   player,
		Move:     game.Move{From: start, To: end},
		Piece:    mover,
		Captured: captured,
	}
	gm.history = append(gm.history, u)

	if captured != nil {
		log.Info().Msgf("%s moved %s %s->%s capturing %s", player, mover, start, end, captured)
	} else {
		log.Info().Msgf("%s moved %s %s->%s", player, mover, start, end)
	}
	return u, nil
}

// Validate returns the verdict Move would reach without applying anything.
func (gm *GameMaster) Validate(player game.Player, start, end game.Coordinate) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.validator.Validate(gm.board, player, start, end)
}

func (gm *GameMaster) LegalMoves(player game.Player) []game.Move {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return game.LegalMoves(gm.board, player, gm.validator)
}

func (gm *GameMaster) PieceAt(c game.Coordinate) (game.Piece, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.board.PieceAt(c)
}

func (gm *GameMaster) Pieces() []game.Piece {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.board.Pieces()
}

// View runs fn with the board while holding the lock. fn must not keep the
// board or mutate it.
func (gm *GameMaster) View(fn func(b *game.Board)) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	fn(gm.board)
}

// History returns a copy of the applied moves, oldest first.
func (gm *GameMaster) History() []Update {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	out := make([]Update, len(gm.history))
	copy(out, gm.history)
	return out
}
