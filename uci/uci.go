package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/journal"
	"github.com/daystram/chesscore/position"
)

var (
	EngineName   = "Chesscore"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = Options{
		ParallelPerft: true,
	}
)

type Options struct {
	ParallelPerft bool

	// Recorder, when set, restores the game at startup and stores it after
	// every position change.
	Recorder Recorder
}

// Recorder persists the moves played since the starting position.
type Recorder interface {
	Load(ctx context.Context) ([]board.Move, error)
	Save(ctx context.Context, mvs []board.Move) error
}

type Interface struct {
	in      io.Reader
	out     io.Writer
	options Options

	board *board.Board
	moves []board.Move
}

func NewInterface(in io.Reader, out io.Writer, opts *Options) *Interface {
	o := defaultOptions
	if opts != nil {
		o = *opts
	}
	return &Interface{
		in:      in,
		out:     out,
		options: o,
	}
}

// Board returns the current position.
func (i *Interface) Board() *board.Board {
	return i.board
}

// Run reads commands until quit or end of input.
func (i *Interface) Run(ctx context.Context) error {
	if err := i.restore(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "uci":
			i.commandUCI(ctx)
		case "ucinewgame":
			i.commandNewGame(ctx)
		case "isready":
			i.println("readyok")
		case "position":
			i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "go":
			i.commandGo(ctx, args[1:])
		case "legal":
			i.commandLegal(ctx, args[1:])
		case "quit":
			return nil
		default:
			i.info("unknown command: %s", args[0])
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println("uciok")
}

func (i *Interface) commandNewGame(ctx context.Context) {
	i.board.Reset()
	i.moves = nil
	i.record(ctx)
}

func (i *Interface) commandPosition(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}
	if args[0] != "startpos" {
		i.info("unsupported position: %s", args[0])
		return
	}

	var mvs []board.Move
	if len(args) > 1 {
		if args[1] != "moves" {
			i.info("unexpected token: %s", args[1])
			return
		}
		for _, s := range args[2:] {
			mv, err := board.ParseMove(s)
			if err != nil {
				i.info("%v", err)
				return
			}
			mvs = append(mvs, mv)
		}
	}

	b, err := board.NewBoard()
	if err != nil {
		i.info("%v", err)
		return
	}
	played, err := b.ApplyMoves(mvs)
	if err != nil {
		i.info("%v", err)
		return
	}
	i.board, i.moves = b, played
	i.record(ctx)
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
	st, err := i.board.State()
	if err != nil {
		i.info("%v", err)
		return
	}
	i.println(fmt.Sprintf("turn: %s state: %s", i.board.Turn(), st))
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		i.info("only go perft <depth> is supported")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		i.info("invalid depth: %s", args[1])
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	res, err := bench.Perft(ctx, i.board, depth, bench.Options{
		Parallel: i.options.ParallelPerft,
		Out:      out,
	})
	close(out)
	<-done
	if err != nil {
		i.info("%v", err)
		return
	}
	i.println("")
	i.println(fmt.Sprintf("Nodes searched: %d", res.Nodes))
}

func (i *Interface) commandLegal(_ context.Context, args []string) {
	if len(args) != 1 {
		return
	}
	from, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.info("%v", err)
		return
	}
	if p := i.board.At(from); p.IsEmpty() || p.Side() != i.board.Turn() {
		i.info("no %s piece on %s", i.board.Turn(), from)
		return
	}
	tos, err := i.board.GenerateMoves(from)
	if err != nil {
		i.info("%v", err)
		return
	}
	i.println(i.board.Draw(tos...))
	names := make([]string, 0, len(tos))
	for _, to := range tos {
		names = append(names, to.Notation())
	}
	i.println(fmt.Sprintf("legal %s: %s", from, strings.Join(names, " ")))
}

func (i *Interface) restore(ctx context.Context) error {
	i.moves = nil
	if i.options.Recorder == nil {
		b, err := board.NewBoard()
		if err != nil {
			return err
		}
		i.board = b
		return nil
	}

	mvs, err := i.options.Recorder.Load(ctx)
	if err != nil {
		return err
	}
	b, played, err := journal.Replay(mvs)
	if err != nil {
		i.info("discarding saved game: %v", err)
		if b, err = board.NewBoard(); err != nil {
			return err
		}
		played = nil
	}
	i.board, i.moves = b, played
	if len(played) > 0 {
		i.info("resumed game after %d moves", len(played))
	}
	return nil
}

func (i *Interface) record(ctx context.Context) {
	if i.options.Recorder == nil {
		return
	}
	if err := i.options.Recorder.Save(ctx, i.moves); err != nil {
		i.info("save: %v", err)
	}
}

func (i *Interface) info(format string, a ...any) {
	i.println("info string " + fmt.Sprintf(format, a...))
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
