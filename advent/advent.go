package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr, os.Args[0])
		os.Exit(1)
	}
	run, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	run(os.Args[2:])
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s <solution> [args...]\n", prog)
	fmt.Fprintln(w, "solutions:")
	for _, name := range solutionNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// solutions maps a name like "1" or "1b" to its entry point. It is only
// written from init functions.
var solutions = make(map[string]func(args []string))

func register(name string, run func(args []string)) {
	if _, dup := solutions[name]; dup {
		panic(fmt.Sprintf("solution %q registered twice", name))
	}
	solutions[name] = run
}

func solutionNames() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// nameLess orders solution names by day number, then by part suffix.
func nameLess(name0, name1 string) bool {
	day0, part0 := splitName(name0)
	day1, part1 := splitName(name1)
	if day0 != day1 {
		return day0 < day1
	}
	return part0 < part1
}

// splitName splits "12b" into (12, "b"). Names must start with a day number.
func splitName(name string) (day int, part string) {
	i := strings.IndexFunc(name, func(r rune) bool { return r < '0' || r > '9' })
	if i < 0 {
		i = len(name)
	}
	day, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("bad solution name %q: %s", name, err))
	}
	return day, name[i:]
}
