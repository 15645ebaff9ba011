package game

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const noPiece PieceID = 0

// Board owns one cell per coordinate and the set of live pieces. A cell holds
// at most one piece id; the live set always equals the set of ids held by
// cells.
type Board struct {
	height int
	width  int
	cells  []PieceID         // column-major: x varies fastest
	pieces map[PieceID]Piece // live pieces
	at     map[PieceID]int   // piece id -> cell index
}

// NewBoard builds a height x width board and puts each piece in the first
// unoccupied cell in iteration order (x inner, y outer).
func NewBoard(height, width int, pieces []Piece) (*Board, error) {
	if height < 0 || width < 0 || (width != 0 && height > math.MaxInt/width) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	b := &Board{
		height: height,
		width:  width,
		cells:  make([]PieceID, height*width),
		pieces: make(map[PieceID]Piece, len(pieces)),
		at:     make(map[PieceID]int, len(pieces)),
	}

	next := 0
	for _, p := range pieces {
		if p.ID == noPiece {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPiece, p)
		}
		if _, ok := b.pieces[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrPieceAlreadyPlaced, p)
		}
		for next < len(b.cells) && b.cells[next] != noPiece {
			next++
		}
		if next == len(b.cells) {
			return nil, fmt.Errorf("%w: cannot place %s", ErrBoardFull, p)
		}
		b.put(p, next)
	}
	return b, nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// Len returns the number of live pieces.
func (b *Board) Len() int { return len(b.pieces) }

// Contains reports whether c is in [0,height) x [0,width).
func (b *Board) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < b.height && c.Y >= 0 && c.Y < b.width
}

func (b *Board) index(c Coordinate) int {
	return c.Y*b.height + c.X
}

func (b *Board) coordinate(i int) Coordinate {
	return Coordinate{X: i % b.height, Y: i / b.height}
}

// Coordinates lists every cell coordinate in iteration order.
func (b *Board) Coordinates() []Coordinate {
	out := make([]Coordinate, len(b.cells))
	for i := range b.cells {
		out[i] = b.coordinate(i)
	}
	return out
}

// PieceAt returns the piece at c. It returns false for empty cells and for
// coordinates off the board.
func (b *Board) PieceAt(c Coordinate) (Piece, bool) {
	if !b.Contains(c) {
		return Piece{}, false
	}
	id := b.cells[b.index(c)]
	if id == noPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Locate returns the coordinate of a live piece.
func (b *Board) Locate(id PieceID) (Coordinate, bool) {
	i, ok := b.at[id]
	if !ok {
		return Coordinate{}, false
	}
	return b.coordinate(i), true
}

// Pieces returns the live pieces ordered by id.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, c Piece) int { return cmp.Compare(a.ID, c.ID) })
	return out
}

// Place puts a piece that is not yet on the board into an empty cell.
func (b *Board) Place(p Piece, c Coordinate) error {
	if p.ID == noPiece {
		return fmt.Errorf("%w: %s", ErrInvalidPiece, p)
	}
	if !b.Contains(c) {
		return fmt.Errorf("%w %s", ErrNoSuchCell, c)
	}
	if _, ok := b.pieces[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrPieceAlreadyPlaced, p)
	}
	i := b.index(c)
	if b.cells[i] != noPiece {
		return fmt.Errorf("%w: %s", ErrOccupiedCell, c)
	}
	b.put(p, i)
	return nil
}

// Remove takes a piece off the board: its cell is cleared and it leaves the
// live set. Removing a piece that is not on the board changes nothing.
func (b *Board) Remove(id PieceID) error {
	if _, ok := b.at[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrPieceNotOnBoard, id)
	}
	b.remove(id)
	return nil
}

// Move relocates the piece at from to to. An enemy piece at to is captured
// and returned. All preconditions are checked before anything is mutated.
func (b *Board) Move(from, to Coordinate) (*Piece, error) {
	if !b.Contains(from) {
		return nil, fmt.Errorf("%w %s", ErrNoSuchCell, from)
	}
	if !b.Contains(to) {
		return nil, fmt.Errorf("%w %s", ErrNoSuchCell, to)
	}
	src, dst := b.index(from), b.index(to)
	moverID := b.cells[src]
	if moverID == noPiece {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCell, from)
	}
	mover := b.pieces[moverID]

	var captured *Piece
	if targetID := b.cells[dst]; targetID != noPiece {
		target := b.pieces[targetID]
		if target.Owner == mover.Owner {
			return nil, fmt.Errorf("%w: %s holds %s", ErrOccupiedCell, to, target)
		}
		captured = &target
	}

	if captured != nil {
		b.remove(captured.ID)
	}
	b.cells[src] = noPiece
	b.cells[dst] = moverID
	b.at[moverID] = dst
	log.Debug().Msgf("moved %s from %s to %s", mover, from, to)
	return captured, nil
}

// Verify checks that the live set and the cells reference exactly the same
// pieces and that the location index agrees with the cells.
func (b *Board) Verify() error {
	seen := 0
	for i, id := range b.cells {
		if id == noPiece {
			continue
		}
		seen++
		if _, ok := b.pieces[id]; !ok {
			return fmt.Errorf("%w: cell %s holds dead piece %d", ErrCorruptBoard, b.coordinate(i), id)
		}
		if b.at[id] != i {
			return fmt.Errorf("%w: piece %d indexed at %d but found at %d", ErrCorruptBoard, id, b.at[id], i)
		}
	}
	if seen != len(b.pieces) || seen != len(b.at) {
		return fmt.Errorf("%w: %d pieces in cells, %d live, %d indexed", ErrCorruptBoard, seen, len(b.pieces), len(b.at))
	}
	return nil
}

func (b *Board) put(p Piece, i int) {
	b.cells[i] = p.ID
	b.pieces[p.ID] = p
	b.at[p.ID] = i
}

func (b *Board) remove(id PieceID) {
	i := b.at[id]
	log.Debug().Msgf("removing %s from %s", b.pieces[id], b.coordinate(i))
	b.cells[i] = noPiece
	delete(b.pieces, id)
	delete(b.at, id)
}

// String renders the board with x as rows and y as columns, for diagnostics.
func (b *Board) String() string {
	var sb strings.Builder
	for x := 0; x < b.height; x++ {
		for y := 0; y < b.width; y++ {
			p, ok := b.PieceAt(C(x, y))
			if !ok {
				sb.WriteString(" . ")
				continue
			}
			sb.WriteString(" " + p.Kind.String()[:1] + ownerMark(p.Owner))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func ownerMark(p Player) string {
	if p == "" {
		return "?"
	}
	r, _ := utf8.DecodeLastRuneInString(string(p))
	return string(r)
}
