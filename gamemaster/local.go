package gamemaster

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"minichess/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps the games of one process, keyed by a random id.
type Manager struct {
	mu      sync.RWMutex
	games   map[string]*GameMaster
	options []Option
}

// NewManager returns a manager whose games are created with options.
func NewManager(options ...Option) *Manager {
	return &Manager{
		games:   make(map[string]*GameMaster),
		options: options,
	}
}

// NewGame starts a game between two players. Each game gets its own id
// generator, so piece ids never leak between games.
func (m *Manager) NewGame(player1, player2 game.Player) (*GameMaster, error) {
	options := append(slices.Clone(m.options), WithIDGenerator(game.NewIDGenerator()))
	gm, err := NewGame(player1, player2, options...)
	if err != nil {
		return nil, err
	}
	gm.ID = uuid.NewString()

	m.mu.Lock()
	m.games[gm.ID] = gm
	m.mu.Unlock()

	log.Info().Msgf("created game %s between %s and %s", gm.ID, player1, player2)
	return gm, nil
}

func (m *Manager) Get(id string) (*GameMaster, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gm, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return gm, nil
}

// Move forwards a move to the game with the given id.
func (m *Manager) Move(id string, player game.Player, start, end game.Coordinate) (Update, error) {
	gm, err := m.Get(id)
	if err != nil {
		return Update{}, err
	}
	return gm.Move(player, start, end)
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// IDs returns the ids of all live games, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
