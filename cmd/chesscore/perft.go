package main

import (
	"context"
	"log"

	"github.com/daystram/chesscore/bench"
)

func perft(args []string, depth int, parallel bool) error {
	mode := "dfs"
	if parallel {
		mode = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, mode)

	b, err := replay(args)
	if err != nil {
		return err
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	res, err := bench.Perft(context.Background(), b, depth, bench.Options{
		Parallel: parallel,
		Out:      out,
	})
	close(out)
	<-done
	if err != nil {
		return err
	}
	log.Println(res)
	return nil
}
