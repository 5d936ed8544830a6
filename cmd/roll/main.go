// roll draws one random item from a loot table file and prints it.
//
// Usage:
//
//	roll <table-file>
//
// Exits non-zero with a diagnostic when the file cannot be opened, the table
// is malformed, or the table cannot be sampled (empty, all-zero weights).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"lootpick/internal/loot"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: roll <table-file>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fatal(fmt.Errorf("open table: %w", err))
	}
	table, err := loot.Parse(f)
	f.Close()
	if err != nil {
		fatal(fmt.Errorf("parse %s: %w", os.Args[1], err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	item, err := table.Pick(rng)
	if err != nil {
		fatal(err)
	}
	fmt.Println(item)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
