package game

import "fmt"

// Move is a proposed displacement of whatever piece sits at From.
type Move struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// LegalMoves lists every move the validator accepts for player's live pieces,
// ordered by piece id and then by destination in board iteration order.
func LegalMoves(b *Board, player Player, v *Validator) []Move {
	var moves []Move
	targets := b.Coordinates()
	for _, p := range b.Pieces() {
		if p.Owner != player {
			continue
		}
		from, _ := b.Locate(p.ID)
		for _, to := range targets {
			if v.Validate(b, player, from, to) == nil {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}
