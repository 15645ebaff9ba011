package gamemaster

import (
	"minichess/game"
	"minichess/meta"
)

// Layout describes an initial position: board size and how many knights and
// bishops to create. Owners alternate within each kind, first player first.
type Layout struct {
	Height  int
	Width   int
	Knights int
	Bishops int
}

func StandardLayout() Layout {
	return Layout{
		Height:  meta.BOARD_HEIGHT,
		Width:   meta.BOARD_WIDTH,
		Knights: meta.TOTAL_KNIGHTS,
		Bishops: meta.TOTAL_BISHOPS,
	}
}

// Pieces creates the layout's pieces: all knights, then all bishops.
func (l Layout) Pieces(ids *game.IDGenerator, player1, player2 game.Player) []game.Piece {
	pieces := make([]game.Piece, 0, l.Knights+l.Bishops)
	owner := func(i int) game.Player {
		if i%2 == 0 {
			return player1
		}
		return player2
	}
	for i := 0; i < l.Knights; i++ {
		pieces = append(pieces, game.NewPiece(ids, game.Knight, owner(i)))
	}
	for i := 0; i < l.Bishops; i++ {
		pieces = append(pieces, game.NewPiece(ids, game.Bishop, owner(i)))
	}
	return pieces
}

// Build creates the board with the layout's pieces placed first-fit.
func (l Layout) Build(ids *game.IDGenerator, player1, player2 game.Player) (*game.Board, error) {
	return game.NewBoard(l.Height, l.Width, l.Pieces(ids, player1, player2))
}
