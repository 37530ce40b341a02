package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/fatih/color"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile  = flag.Bool("profile", false, "serve pprof endpoint")
	useColor = flag.Bool("color", true, "draw boards with terminal colors")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "walk root moves in parallel in perft mode")

	journalDir = flag.String("journal", "", "directory of the game journal in UCI mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}
	if !*useColor {
		color.NoColor = true
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain takes the moves played from the starting position as arguments,
// e.g. e2e4 e7e5.
func realMain(args []string) error {
	if *movegenRun {
		return movegen(args)
	}
	if *perftDepth > 0 {
		return perft(args, *perftDepth, *perftParallel)
	}
	return runUCI(*journalDir)
}
