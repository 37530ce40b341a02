package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// Result counts the leaf moves of a perft walk by kind.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64

	Depth   int
	Elapsed time.Duration
}

func (r *Result) add(o Result) {
	r.Nodes += o.Nodes
	r.Captures += o.Captures
	r.EnPassants += o.EnPassants
	r.Castles += o.Castles
	r.Promotions += o.Promotions
	r.Checks += o.Checks
}

func (r Result) String() string {
	rate := 0
	if r.Elapsed > 0 {
		rate = int(float64(r.Nodes) / r.Elapsed.Seconds())
	}
	return message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			r.Depth, r.Nodes, rate, r.Captures, r.EnPassants, r.Castles, r.Promotions, r.Checks, r.Elapsed.Seconds())
}

type Options struct {
	// Parallel walks every root move in its own goroutine.
	Parallel bool

	// Out receives one "<move>: <nodes>" line per root move when set.
	Out chan<- string
}

// Perft counts the move paths of the given depth starting at b. The board
// itself is left untouched.
func Perft(ctx context.Context, b *board.Board, depth int, opts Options) (Result, error) {
	start := time.Now()
	if depth <= 0 {
		return Result{Nodes: 1, Elapsed: time.Since(start)}, nil
	}

	mvs, err := b.LegalMoves()
	if err != nil {
		return Result{}, err
	}
	children := make([]Result, len(mvs))
	run := func(i int) error {
		mv := mvs[i]
		if depth == 1 {
			return countLeaf(b, mv, &children[i])
		}
		bb := b.Clone()
		if err := bb.ApplyMove(mv); err != nil {
			return err
		}
		return walk(ctx, bb, depth-1, &children[i])
	}

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		ctx = gctx
		for i := range mvs {
			i := i
			g.Go(func() error {
				return run(i)
			})
		}
		err = g.Wait()
	} else {
		for i := range mvs {
			if err = run(i); err != nil {
				break
			}
		}
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Depth: depth}
	for i, child := range children {
		if opts.Out != nil {
			opts.Out <- fmt.Sprintf("%s: %d", mvs[i].UCI(), child.Nodes)
		}
		res.add(child)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

func walk(ctx context.Context, b *board.Board, d int, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mvs, err := b.LegalMoves()
	if err != nil {
		return err
	}
	for _, mv := range mvs {
		if d == 1 {
			if err := countLeaf(b, mv, res); err != nil {
				return err
			}
			continue
		}
		bb := b.Clone()
		if err := bb.ApplyMove(mv); err != nil {
			return err
		}
		if err := walk(ctx, bb, d-1, res); err != nil {
			return err
		}
	}
	return nil
}

func countLeaf(b *board.Board, mv board.Move, res *Result) error {
	res.Nodes++
	target := b.At(mv.To)
	isEnPassant := mv.Piece.Kind() == board.KindPawn && mv.From.X() != mv.To.X() && target.IsEmpty()
	if !target.IsEmpty() || isEnPassant {
		res.Captures++
	}
	if isEnPassant {
		res.EnPassants++
	}
	if mv.IsCastle() != board.CastleDirectionUnknown {
		res.Castles++
	}
	if mv.IsPromote() {
		res.Promotions++
	}

	bb := b.Clone()
	if err := bb.ApplyMove(mv); err != nil {
		return err
	}
	checked, err := bb.InCheck(bb.Turn())
	if err != nil {
		return err
	}
	if checked {
		res.Checks++
	}
	return nil
}
