package game

import "errors"

// MoveError is the verdict of a rejected move. Verdicts are expected during
// normal play and are returned to the caller as values.
type MoveError int

const (
	ErrOutOfBounds MoveError = iota + 1
	ErrPieceNotFound
	ErrInvalidMove
	ErrNotRuleAbiding
	ErrMoveBlocked
)

var moveErrorText = map[MoveError]string{
	ErrOutOfBounds:    "Coordinate out of bounds",
	ErrPieceNotFound:  "Piece not found at the coordinate",
	ErrInvalidMove:    "Invalid move",
	ErrNotRuleAbiding: "Piece not allowed to move like that",
	ErrMoveBlocked:    "Move blocked by another piece",
}

var moveErrorNames = map[MoveError]string{
	ErrOutOfBounds:    "OutOfBounds",
	ErrPieceNotFound:  "PieceNotFound",
	ErrInvalidMove:    "InvalidMove",
	ErrNotRuleAbiding: "NotRuleAbiding",
	ErrMoveBlocked:    "MoveBlocked",
}

func (e MoveError) Error() string {
	if text, ok := moveErrorText[e]; ok {
		return text
	}
	return "unknown move error"
}

// String returns the short kind name, e.g. "MoveBlocked".
func (e MoveError) String() string {
	if name, ok := moveErrorNames[e]; ok {
		return name
	}
	return "Unknown"
}

// IsVerdict reports whether err is a move verdict rather than a board fault.
func IsVerdict(err error) bool {
	var verdict MoveError
	return errors.As(err, &verdict)
}

// Board faults. These mean the caller or the board bookkeeping is wrong, not
// that a player asked for an illegal move.
var (
	ErrOccupiedCell       = errors.New("cell is already occupied")
	ErrEmptyCell          = errors.New("cell is unoccupied")
	ErrPieceNotOnBoard    = errors.New("piece not found on the board")
	ErrPieceAlreadyPlaced = errors.New("piece is already on the board")
	ErrInvalidPiece       = errors.New("piece has no id")
	ErrNoSuchCell         = errors.New("no cell at coordinate")
	ErrBoardFull          = errors.New("no unoccupied cell left")
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrCorruptBoard       = errors.New("board state is corrupt")
)
