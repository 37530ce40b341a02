package main

import (
	"github.com/daystram/chesscore/board"
)

func replay(args []string) (*board.Board, error) {
	mvs := make([]board.Move, 0, len(args))
	for _, s := range args {
		mv, err := board.ParseMove(s)
		if err != nil {
			return nil, err
		}
		mvs = append(mvs, mv)
	}
	b, err := board.NewBoard()
	if err != nil {
		return nil, err
	}
	if _, err := b.ApplyMoves(mvs); err != nil {
		return nil, err
	}
	return b, nil
}
