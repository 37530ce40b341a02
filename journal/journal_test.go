package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

func mustOpen(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func parseMoves(t *testing.T, moves ...string) []board.Move {
	t.Helper()
	mvs := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		mv, err := board.ParseMove(m)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		mvs = append(mvs, mv)
	}
	return mvs
}

func uci(mvs []board.Move) []string {
	s := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		s = append(s, mv.From.Notation()+mv.To.Notation())
	}
	return s
}

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := mustOpen(t)

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(got) != 0 {
		t.Errorf("unexpected moves in empty journal: %v", got)
	}

	want := parseMoves(t, "e2e4", "e7e5", "g1f3")
	if err := s.Save(ctx, want); err != nil {
		t.Fatal("unexpected error:", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if diff := cmp.Diff(uci(want), uci(got)); diff != "" {
		t.Errorf("unexpected moves (-want +got):\n%s", diff)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal("unexpected error:", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(got) != 0 {
		t.Errorf("unexpected moves after clear: %v", got)
	}
}

func TestStoreIllegalGame(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := mustOpen(t)

	if err := s.Save(ctx, parseMoves(t, "e2e5")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	mvs, err := s.Load(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, _, err := Replay(mvs); !errors.Is(err, ErrCorrupt) || !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v and %v", err, ErrCorrupt, board.ErrIllegalMove)
	}
}

func TestStoreCanceled(t *testing.T) {
	t.Parallel()
	s := mustOpen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Save(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
}

func TestReplay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		moves   []string
		wantErr error
	}{
		{name: "empty game", moves: nil},
		{name: "promotion", moves: []string{"h2h4", "g7g5", "h4g5", "g8f6", "g5g6", "f6e4", "g6g7", "e4d6", "g7h8q"}},
		{name: "moving from an empty square", moves: []string{"e2e4", "e2e4"}, wantErr: board.ErrEmptySquare},
		{name: "illegal move", moves: []string{"e2e4", "e7e5", "e1e3"}, wantErr: board.ErrIllegalMove},
		{name: "promotion without suffix", moves: []string{"h2h4", "g7g5", "h4g5", "g8f6", "g5g6", "f6e4", "g6g7", "e4d6", "g7h8"}, wantErr: board.ErrInvalidMove},
		{name: "suffix on a plain move", moves: []string{"e2e4q"}, wantErr: board.ErrInvalidMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, played, err := Replay(parseMoves(t, tt.moves...))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrCorrupt) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrCorrupt)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if len(played) != len(tt.moves) {
				t.Errorf("unexpected played count: got=%d want=%d", len(played), len(tt.moves))
			}
			if len(tt.moves) == 0 {
				return
			}
			last := played[len(played)-1]
			if last.UCI() != tt.moves[len(tt.moves)-1] {
				t.Errorf("unexpected last move: got=%s want=%s", last.UCI(), tt.moves[len(tt.moves)-1])
			}
			if got := b.At(position.H8); got != board.NewPiece(board.SideWhite, board.KindQueen) {
				t.Errorf("unexpected piece on h8: got=%v", got)
			}
		})
	}
}
