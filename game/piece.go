package game

import (
	"fmt"
	"sync/atomic"
)

// Player identifies the owner of a piece. The core only compares players.
type Player string

// Kind is the closed category of a piece and selects its movement rule.
type Kind int

const (
	Knight Kind = iota
	Bishop
)

var kindNames = map[Kind]string{
	Knight: "Knight",
	Bishop: "Bishop",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type PieceID int64

// IDGenerator hands out monotonically increasing piece ids, starting at 1.
// Ids are never reused. Each game session owns its own generator.
type IDGenerator struct {
	last atomic.Int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Next() PieceID {
	return PieceID(g.last.Add(1))
}

// Piece is compared by identity (ID), not by value. Use Is for equality.
// A piece does not know its coordinate; ask the board with Locate.
type Piece struct {
	ID    PieceID `json:"id"`
	Owner Player  `json:"owner"`
	Kind  Kind    `json:"kind"`
}

func NewPiece(ids *IDGenerator, kind Kind, owner Player) Piece {
	return Piece{ID: ids.Next(), Owner: owner, Kind: kind}
}

// Is reports whether p and other are the same piece.
func (p Piece) Is(other Piece) bool {
	return p.ID == other.ID
}

// RulesAbiding checks the displacement against the default rule for the
// piece's kind. It never looks at the board.
func (p Piece) RulesAbiding(start, end Coordinate) bool {
	return defaultRules.allows(p.Kind, start, end)
}

func (p Piece) String() string {
	return fmt.Sprintf("%s#%d(%s)", p.Kind, p.ID, p.Owner)
}
