package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/advent/locations"
	"github.com/dustin/go-humanize"
)

func init() {
	register("1", func(args []string) { runSolution(args, day1Both) })
	register("1a", func(args []string) { runSolution(args, day1PartOne) })
	register("1b", func(args []string) { runSolution(args, day1PartTwo) })
}

type day1Parts int

const (
	day1PartOne day1Parts = 1 << iota
	day1PartTwo

	day1Both = day1PartOne | day1PartTwo
)

var errDay1Usage = errors.New("usage: advent 1 [-v] [input] (flags go before the input path)")

func runSolution(args []string, parts day1Parts) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := day1(os.Stdout, cfg, args, parts); err != nil {
		log.Fatal(err)
	}
}

// day1 reads the two location lists and writes the requested answers to w.
// Nothing is written unless the whole input parses.
func day1(w io.Writer, cfg config, args []string, parts day1Parts) error {
	fs := flag.NewFlagSet("1", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log a summary of the input to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errDay1Usage
	}
	name := cfg.inputPath(1)
	if fs.NArg() == 1 {
		name = fs.Arg(0)
	}

	lists, err := locations.ReadFile(name)
	if err != nil {
		return err
	}
	if *verbose {
		fi, err := os.Stat(name)
		if err != nil {
			return err
		}
		log.Printf("read %s pairs from %s (%s)",
			humanize.Comma(int64(lists.Len())), name, humanize.Bytes(uint64(fi.Size())))
	}

	if parts&day1PartOne != 0 {
		fmt.Fprintf(w, "Part One: %d\n", locations.Distance(lists.Left, lists.Right))
	}
	if parts&day1PartTwo != 0 {
		fmt.Fprintf(w, "Part Two: %d\n", locations.Similarity(lists.Left, lists.Right))
	}
	return nil
}
