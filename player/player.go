package player

import (
	"minichess/game"

	"golang.org/x/exp/rand"
)

// MoveLister is anything that can list a player's legal moves, such as a
// *gamemaster.GameMaster.
type MoveLister interface {
	LegalMoves(player game.Player) []game.Move
}

// Agent chooses a move for a player.
type Agent interface {
	// FindMove returns one of the player's legal moves, or false when there is none.
	FindMove(board MoveLister, player game.Player) (game.Move, bool)
	Name() string
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent that picks uniformly among legal moves. The agent
// is not safe for concurrent use.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board MoveLister, player game.Player) (game.Move, bool) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}

func (a *randomAgent) Name() string {
	return "random"
}

type firstAgent struct{}

// NewFirst returns an agent that always plays the first legal move, which
// makes games fully deterministic.
func NewFirst() Agent {
	return firstAgent{}
}

func (firstAgent) FindMove(board MoveLister, player game.Player) (game.Move, bool) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[0], true
}

func (firstAgent) Name() string {
	return "first"
}
