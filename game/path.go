package game

import "minichess/utils"

// IsWithinBoard returns ErrOutOfBounds unless c is on the board.
func IsWithinBoard(b *Board, c Coordinate) error {
	if !b.Contains(c) {
		return ErrOutOfBounds
	}
	return nil
}

// PathUnobstructed walks from start to end one unit step at a time and
// returns ErrMoveBlocked if any stepped-on cell is occupied, the destination
// included. Only horizontal, vertical and diagonal lines are traced; any
// other displacement (a knight jump) is not checked and returns nil.
func PathUnobstructed(b *Board, start, end Coordinate) error {
	return tracePath(b, start, end, nil)
}

// tracePath is PathUnobstructed with an optional capture exemption: when
// capturer is non-nil, an enemy of *capturer sitting exactly on end does not
// block.
func tracePath(b *Board, start, end Coordinate, capturer *Player) error {
	if err := IsWithinBoard(b, start); err != nil {
		return err
	}
	if err := IsWithinBoard(b, end); err != nil {
		return err
	}
	if !isLine(start, end) {
		return nil
	}

	stepX := utils.Sign(end.X - start.X)
	stepY := utils.Sign(end.Y - start.Y)

	at := start
	for at != end {
		at = at.Add(stepX, stepY)
		if !b.Contains(at) {
			return ErrMoveBlocked
		}
		p, occupied := b.PieceAt(at)
		if !occupied {
			continue
		}
		if at == end && capturer != nil && p.Owner != *capturer {
			continue
		}
		return ErrMoveBlocked
	}
	return nil
}
