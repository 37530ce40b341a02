package main

import (
	"context"
	"os"

	"github.com/daystram/chesscore/journal"
	"github.com/daystram/chesscore/uci"
)

func runUCI(journalDir string) error {
	opts := &uci.Options{
		ParallelPerft: *perftParallel,
	}
	if journalDir != "" {
		store, err := journal.Open(journalDir)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}
	return uci.NewInterface(os.Stdin, os.Stdout, opts).Run(context.Background())
}
