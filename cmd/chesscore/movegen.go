package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/chesscore/board"
)

func movegen(args []string) error {
	log.Println("============ movegen")
	b, err := replay(args)
	if err != nil {
		return err
	}
	st, err := b.State()
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	fmt.Println(st)
	return dumpMoves(b)
}

func dumpMoves(b *board.Board) error {
	mvs, err := b.LegalMoves()
	if err != nil {
		return err
	}
	width := len(strconv.Itoa(len(mvs)))
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cas=%s) (pro=%v)\n",
			width, i+1, mv.UCI(), mv.Piece.Side(), mv.Piece.Kind().Name(), mv.From, mv.To, mv.IsCastle(), mv.IsPromote())
	}
	return nil
}
