package uci

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/journal"
	"github.com/daystram/chesscore/position"
)

func run(t *testing.T, opts *Options, script ...string) (*Interface, string) {
	t.Helper()
	var out bytes.Buffer
	i := NewInterface(strings.NewReader(strings.Join(script, "\n")+"\n"), &out, opts)
	if err := i.Run(context.Background()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	return i, out.String()
}

func lines(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}

func TestHandshake(t *testing.T) {
	t.Parallel()
	_, out := run(t, nil, "uci", "isready", "quit", "isready")
	want := []string{
		"id name " + EngineName,
		"id author " + EngineAuthor,
		"uciok",
		"readyok",
	}
	if diff := cmp.Diff(want, lines(out)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		command  string
		wantInfo string
		wantAt   map[position.Pos]board.Piece
		wantTurn board.Side
	}{
		{
			name:     "startpos",
			command:  "position startpos",
			wantAt:   map[position.Pos]board.Piece{position.E2: board.NewPiece(board.SideWhite, board.KindPawn)},
			wantTurn: board.SideWhite,
		},
		{
			name:    "startpos with moves",
			command: "position startpos moves e2e4 e7e5 g1f3",
			wantAt: map[position.Pos]board.Piece{
				position.E4: board.NewPiece(board.SideWhite, board.KindPawn),
				position.E5: board.NewPiece(board.SideBlack, board.KindPawn),
				position.F3: board.NewPiece(board.SideWhite, board.KindKnight),
				position.G1: board.Empty,
			},
			wantTurn: board.SideBlack,
		},
		{
			name:     "fen is rejected",
			command:  "position fen 8/8/8/8/8/8/8/8 w - - 0 1",
			wantInfo: "info string unsupported position: fen",
			wantAt:   map[position.Pos]board.Piece{position.E2: board.NewPiece(board.SideWhite, board.KindPawn)},
			wantTurn: board.SideWhite,
		},
		{
			name:     "illegal move keeps the previous position",
			command:  "position startpos moves e2e4 e2e4",
			wantInfo: "info string ply 2 (e2e4): empty square",
			wantAt:   map[position.Pos]board.Piece{position.E2: board.NewPiece(board.SideWhite, board.KindPawn)},
			wantTurn: board.SideWhite,
		},
		{
			name:     "promotion suffix on a plain move",
			command:  "position startpos moves e2e4q",
			wantInfo: "info string ply 1 (e2e4): invalid move",
			wantAt:   map[position.Pos]board.Piece{position.E2: board.NewPiece(board.SideWhite, board.KindPawn)},
			wantTurn: board.SideWhite,
		},
		{
			name:     "malformed move",
			command:  "position startpos moves e2",
			wantInfo: "info string invalid move",
			wantTurn: board.SideWhite,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			i, out := run(t, nil, tt.command, "quit")
			if tt.wantInfo != "" && !strings.HasPrefix(out, tt.wantInfo) {
				t.Errorf("unexpected output: got=%q want prefix %q", out, tt.wantInfo)
			}
			if tt.wantInfo == "" && out != "" {
				t.Errorf("unexpected output: %q", out)
			}
			for pos, want := range tt.wantAt {
				if got := i.Board().At(pos); got != want {
					t.Errorf("unexpected piece at %s: got=%v want=%v", pos, got, want)
				}
			}
			if got := i.Board().Turn(); got != tt.wantTurn {
				t.Errorf("unexpected turn: got=%s want=%s", got, tt.wantTurn)
			}
		})
	}
}

func TestGoPerft(t *testing.T) {
	t.Parallel()
	for _, parallel := range []bool{false, true} {
		_, out := run(t, &Options{ParallelPerft: parallel}, "go perft 2", "quit")
		got := lines(out)
		if len(got) != 20+2 {
			t.Fatalf("unexpected line count: got=%d want=%d\n%s", len(got), 22, out)
		}
		if !strings.Contains(out, "a2a3: 20\n") {
			t.Errorf("missing divide line for a2a3:\n%s", out)
		}
		if last := got[len(got)-1]; last != "Nodes searched: 400" {
			t.Errorf("unexpected summary: got=%q", last)
		}
	}
}

func TestLegal(t *testing.T) {
	t.Parallel()
	_, out := run(t, nil, "position startpos moves e2e4 e7e5", "legal g1", "legal e5", "quit")
	got := lines(out)
	var list []string
	for _, l := range got {
		if rest, ok := strings.CutPrefix(l, "legal g1: "); ok {
			list = strings.Fields(rest)
		}
	}
	sort.Strings(list)
	if diff := cmp.Diff([]string{"e2", "f3", "h3"}, list); diff != "" {
		t.Errorf("unexpected destinations (-want +got):\n%s", diff)
	}
	if last := got[len(got)-1]; last != "info string no White piece on e5" {
		t.Errorf("unexpected output for opponent piece: got=%q", last)
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()
	store, err := journal.OpenInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	opts := &Options{Recorder: store}

	_, out := run(t, opts, "position startpos moves e2e4 c7c5", "quit")
	if out != "" {
		t.Errorf("unexpected output: %q", out)
	}

	i, out := run(t, opts, "quit")
	if want := "info string resumed game after 2 moves\n"; out != want {
		t.Errorf("unexpected output: got=%q want=%q", out, want)
	}
	if got := i.Board().At(position.C5); got != board.NewPiece(board.SideBlack, board.KindPawn) {
		t.Errorf("unexpected piece at c5: got=%v", got)
	}

	_, _ = run(t, opts, "ucinewgame", "quit")
	mvs, err := store.Load(context.Background())
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(mvs) != 0 {
		t.Errorf("unexpected moves after new game: %v", mvs)
	}
}

func TestRecorderDiscardsIllegalGame(t *testing.T) {
	t.Parallel()
	store, err := journal.OpenInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	mv, err := board.ParseMove("e2e5")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := store.Save(context.Background(), []board.Move{mv}); err != nil {
		t.Fatal("unexpected error:", err)
	}

	i, out := run(t, &Options{Recorder: store}, "quit")
	if want := "info string discarding saved game: corrupt journal"; !strings.HasPrefix(out, want) {
		t.Errorf("unexpected output: got=%q want prefix %q", out, want)
	}
	if got := i.Board().At(position.E2); got != board.NewPiece(board.SideWhite, board.KindPawn) {
		t.Errorf("unexpected piece at e2: got=%v", got)
	}
}
