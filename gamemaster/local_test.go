package gamemaster

import (
	"errors"
	"testing"

	"minichess/game"
)

func TestManagerNewGame(t *testing.T) {
	m := NewManager()
	g1, err := m.NewGame("Player1", "Player2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	g2, err := m.NewGame("Player1", "Player2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if g1.ID == "" || g1.ID == g2.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", g1.ID, g2.ID)
	}
	if len(m.IDs()) != 2 {
		t.Errorf("expected 2 games, got %d", len(m.IDs()))
	}

	// Each game numbers its own pieces from 1
	if g1.Pieces()[0].ID != 1 || g2.Pieces()[0].ID != 1 {
		t.Errorf("expected both games to start at piece id 1, got %d and %d", g1.Pieces()[0].ID, g2.Pieces()[0].ID)
	}

	got, err := m.Get(g1.ID)
	if err != nil || got != g1 {
		t.Errorf("expected to get back the first game, got %v (%v)", got, err)
	}
}

func TestManagerMove(t *testing.T) {
	m := NewManager()
	gm, err := m.NewGame("Player1", "Player2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u, err := m.Move(gm.ID, "Player1", game.C(0, 0), game.C(2, 2))
	if err != nil {
		t.Fatalf("expected a legal move, got %v", err)
	}
	if u.Step != 1 || u.Piece.Kind != game.Knight {
		t.Errorf("unexpected update %+v", u)
	}

	_, err = m.Move(gm.ID, "Player2", game.C(2, 2), game.C(3, 3))
	if !errors.Is(err, game.ErrInvalidMove) {
		t.Errorf("expected InvalidMove for the opponent's piece, got %v", err)
	}
}

func TestManagerUnknownGame(t *testing.T) {
	m := NewManager()

	if _, err := m.Get("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := m.Move("missing", "Player1", game.C(0, 0), game.C(1, 1)); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
	if err := m.Delete("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestManagerDelete(t *testing.T) {
	m := NewManager()
	gm, err := m.NewGame("Player1", "Player2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := m.Delete(gm.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := m.Get(gm.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected deleted game to be gone, got %v", err)
	}
}

func TestManagerOptions(t *testing.T) {
	m := NewManager(WithLayout(Layout{Height: 4, Width: 4, Knights: 1}))
	gm, err := m.NewGame("Player1", "Player2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	gm.View(func(b *game.Board) {
		if b.Height() != 4 || b.Width() != 4 || b.Len() != 1 {
			t.Errorf("expected a 4x4 board with one piece, got %dx%d with %d", b.Height(), b.Width(), b.Len())
		}
	})
}
