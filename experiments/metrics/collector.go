package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   string
	Piece    string
	From     string
	To       string
	Captured string // "" when nothing was captured
	Duration time.Duration
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	StalledPlayer  string // Side to move that had no legal move, "" if the turn cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captures       int
	Rejected       int
	PiecesLeft     int
}

type Collector interface {
	Start(gameID, startingPlayer string)
	AddMove(move MoveMetric)
	AddRejected()
	Complete(stalledPlayer string, piecesLeft int) (GameMetric, []MoveMetric)
}

type collector struct {
	gameID         string
	startingPlayer string
	startTime      time.Time
	captures       atomic.Int32
	rejected       atomic.Int32

	mu    sync.Mutex
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID, startingPlayer string) {
	m.startTime = time.Now()
	m.gameID = gameID
	m.startingPlayer = startingPlayer
	m.captures.Store(0)
	m.rejected.Store(0)
	m.mu.Lock()
	m.moves = nil
	m.mu.Unlock()
}

func (m *collector) AddMove(move MoveMetric) {
	if move.Captured != "" {
		m.captures.Add(1)
	}
	m.mu.Lock()
	m.moves = append(m.moves, move)
	m.mu.Unlock()
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete(stalledPlayer string, piecesLeft int) (GameMetric, []MoveMetric) {
	end := time.Now()
	m.mu.Lock()
	moves := make([]MoveMetric, len(m.moves))
	copy(moves, m.moves)
	m.mu.Unlock()

	return GameMetric{
		ID:             m.gameID,
		StartingPlayer: m.startingPlayer,
		StalledPlayer:  stalledPlayer,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(moves),
		Captures:       int(m.captures.Load()),
		Rejected:       int(m.rejected.Load()),
		PiecesLeft:     piecesLeft,
	}, moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID, startingPlayer string) {}
func (m *dummyCollector) AddMove(move MoveMetric)             {}
func (m *dummyCollector) AddRejected()                        {}
func (m *dummyCollector) Complete(stalledPlayer string, piecesLeft int) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
