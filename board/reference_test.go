package board

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/daystram/chesscore/position"
)

const referenceStartpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func referencePos(sq uint8) position.Pos {
	return position.NewPos(int(sq%Width), int(sq/Width))
}

// referenceMoves lists the reference generator's legal moves as coordinate
// pairs. Underpromotions collapse into the queen promotion.
func referenceMoves(rb *dragontoothmg.Board) (map[string]dragontoothmg.Move, []string) {
	byKey := make(map[string]dragontoothmg.Move)
	for _, m := range rb.GenerateLegalMoves() {
		m := m
		if promote := m.Promote(); promote != dragontoothmg.Nothing && promote != dragontoothmg.Queen {
			continue
		}
		key := referencePos(m.From()).Notation() + referencePos(m.To()).Notation()
		byKey[key] = m
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return byKey, keys
}

func TestLegalMovesMatchReference(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 12; seed++ {
		seed := seed
		t.Run("", func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(seed))
			b := mustNewBoard(t)
			rb := dragontoothmg.ParseFen(referenceStartpos)

			for ply := 0; ply < 150; ply++ {
				mvs, err := b.LegalMoves()
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				got := make([]string, 0, len(mvs))
				for _, mv := range mvs {
					got = append(got, mv.From.Notation()+mv.To.Notation())
				}
				sort.Strings(got)

				refByKey, want := referenceMoves(&rb)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("seed %d ply %d: legal moves differ (-want +got):\n%s\n%s\n%s", seed, ply, diff, b.Dump(), b.DebugString())
				}

				checked, err := b.InCheck(b.Turn())
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if checked != rb.OurKingInCheck() {
					t.Fatalf("seed %d ply %d: check differs: got=%v want=%v", seed, ply, checked, rb.OurKingInCheck())
				}

				if len(mvs) == 0 {
					break
				}
				mv := mvs[r.Intn(len(mvs))]
				if err := b.ApplyMove(mv); err != nil {
					t.Fatal("unexpected error:", err)
				}
				rb.Apply(refByKey[mv.From.Notation()+mv.To.Notation()])
			}
		})
	}
}
