package gamemaster

import (
	"sync"
	"testing"

	"minichess/game"

	"github.com/stretchr/testify/require"
)

const (
	player1 game.Player = "Player1"
	player2 game.Player = "Player2"
)

func boardWith(t *testing.T, placements map[game.Coordinate]game.Piece) *game.Board {
	t.Helper()
	b, err := game.NewBoard(8, 8, nil)
	require.NoError(t, err)
	for c, p := range placements {
		require.NoError(t, b.Place(p, c))
	}
	return b
}

func verify(t *testing.T, gm *GameMaster) {
	t.Helper()
	gm.View(func(b *game.Board) {
		require.NoError(t, b.Verify(), "live pieces and cells must agree")
	})
}

func TestNewGame(t *testing.T) {
	gm, err := NewGame(player1, player2)
	require.NoError(t, err)
	verify(t, gm)

	gm.View(func(b *game.Board) {
		require.Len(t, b.Coordinates(), 64)
		require.Equal(t, 4, b.Len())
	})

	knights, bishops := 0, 0
	for _, p := range gm.Pieces() {
		require.Contains(t, []game.Player{player1, player2}, p.Owner)
		switch p.Kind {
		case game.Knight:
			knights++
		case game.Bishop:
			bishops++
		}
	}
	require.Equal(t, 2, knights)
	require.Equal(t, 2, bishops)

	first, ok := gm.PieceAt(game.C(0, 0))
	require.True(t, ok)
	require.Equal(t, game.Knight, first.Kind)
	require.Equal(t, player1, first.Owner)
}

func TestNewGameLayoutTooLarge(t *testing.T) {
	_, err := NewGame(player1, player2, WithLayout(Layout{Height: 1, Width: 1, Knights: 2}))
	require.ErrorIs(t, err, game.ErrBoardFull)
}

func TestGameMasterMove(t *testing.T) {
	t.Run("knight moves and the origin empties", func(t *testing.T) {
		gm, err := NewGame(player1, player2)
		require.NoError(t, err)
		knight, _ := gm.PieceAt(game.C(0, 0))

		require.NoError(t, gm.Validate(player1, game.C(0, 0), game.C(2, 2)))
		u, err := gm.Move(player1, game.C(0, 0), game.C(2, 2))
		require.NoError(t, err)
		require.Nil(t, u.Captured)
		require.True(t, u.Piece.Is(knight))

		_, ok := gm.PieceAt(game.C(0, 0))
		require.False(t, ok, "origin should be empty")
		got, ok := gm.PieceAt(game.C(2, 2))
		require.True(t, ok)
		require.Equal(t, game.Knight, got.Kind)
		require.Equal(t, player1, got.Owner)
		require.Equal(t, []Update{u}, gm.History())
		verify(t, gm)
	})

	t.Run("rejected moves change nothing", func(t *testing.T) {
		gm, err := NewGame(player1, player2)
		require.NoError(t, err)
		before := gm.Pieces()

		_, err = gm.Move(player2, game.C(0, 0), game.C(2, 2))
		require.Equal(t, game.ErrInvalidMove, err)
		_, err = gm.Move(player1, game.C(0, 0), game.C(9, 9))
		require.Equal(t, game.ErrOutOfBounds, err)
		_, err = gm.Move(player1, game.C(5, 5), game.C(6, 6))
		require.Equal(t, game.ErrPieceNotFound, err)
		require.True(t, game.IsVerdict(err))

		require.Equal(t, before, gm.Pieces())
		require.Empty(t, gm.History())
		verify(t, gm)
	})

	t.Run("bishop obeys its rule", func(t *testing.T) {
		ids := game.NewIDGenerator()
		bishop := game.NewPiece(ids, game.Bishop, player1)
		gm := NewGameMaster(boardWith(t, map[game.Coordinate]game.Piece{game.C(3, 3): bishop}))

		_, err := gm.Move(player1, game.C(3, 3), game.C(3, 4))
		require.Equal(t, game.ErrNotRuleAbiding, err)
		_, err = gm.Move(player1, game.C(3, 3), game.C(5, 5))
		require.NoError(t, err)
	})
}

func TestGameMasterCapture(t *testing.T) {
	ids := game.NewIDGenerator()
	bishop := game.NewPiece(ids, game.Bishop, player1)
	enemy := game.NewPiece(ids, game.Knight, player2)
	placements := map[game.Coordinate]game.Piece{
		game.C(3, 3): bishop,
		game.C(5, 5): enemy,
	}

	t.Run("enemy on the destination blocks by default", func(t *testing.T) {
		gm := NewGameMaster(boardWith(t, placements))
		_, err := gm.Move(player1, game.C(3, 3), game.C(5, 5))
		require.Equal(t, game.ErrMoveBlocked, err)
		require.Len(t, gm.Pieces(), 2)
		verify(t, gm)
	})

	t.Run("capture enabled", func(t *testing.T) {
		gm := NewGameMaster(boardWith(t, placements), WithValidator(game.NewValidator(game.WithCapture())))
		u, err := gm.Move(player1, game.C(3, 3), game.C(5, 5))
		require.NoError(t, err)
		require.NotNil(t, u.Captured)
		require.True(t, u.Captured.Is(enemy))

		require.Equal(t, []game.Piece{bishop}, gm.Pieces())
		got, _ := gm.PieceAt(game.C(5, 5))
		require.True(t, got.Is(bishop))
		_, ok := gm.PieceAt(game.C(3, 3))
		require.False(t, ok)
		verify(t, gm)
	})

	t.Run("knight jump captures without a path check", func(t *testing.T) {
		knight := game.NewPiece(ids, game.Knight, player1)
		target := game.NewPiece(ids, game.Bishop, player2)
		gm := NewGameMaster(boardWith(t, map[game.Coordinate]game.Piece{
			game.C(0, 0): knight,
			game.C(1, 2): target,
		}))
		u, err := gm.Move(player1, game.C(0, 0), game.C(1, 2))
		require.NoError(t, err)
		require.True(t, u.Captured.Is(target))
		require.Len(t, gm.Pieces(), 1)
		verify(t, gm)
	})
}

func TestGameMasterLegalMoves(t *testing.T) {
	ids := game.NewIDGenerator()
	bishop := game.NewPiece(ids, game.Bishop, player1)
	gm := NewGameMaster(boardWith(t, map[game.Coordinate]game.Piece{game.C(3, 3): bishop}))

	require.Len(t, gm.LegalMoves(player1), 13)
	require.Empty(t, gm.LegalMoves(player2))
}

func TestGameMasterConcurrentMoves(t *testing.T) {
	ids := game.NewIDGenerator()
	bishop := game.NewPiece(ids, game.Bishop, player1)
	gm := NewGameMaster(boardWith(t, map[game.Coordinate]game.Piece{game.C(3, 3): bishop}))

	targets := []game.Coordinate{
		game.C(4, 4), game.C(5, 5), game.C(2, 2), game.C(1, 1),
		game.C(4, 2), game.C(5, 1), game.C(2, 4), game.C(1, 5),
	}
	results := make([]error, len(targets))

	var wg sync.WaitGroup
	wg.Add(len(targets))
	for i, to := range targets {
		go func(i int, to game.Coordinate) {
			defer wg.Done()
			_, results[i] = gm.Move(player1, game.C(3, 3), to)
		}(i, to)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.Equal(t, game.ErrPieceNotFound, err, "later movers find the origin empty")
	}
	require.Equal(t, 1, succeeded, "exactly one goroutine should move the bishop")
	require.Len(t, gm.History(), 1)
	verify(t, gm)
}
