// Package loot parses loot table files and draws random entries from them.
//
// A table file is line-oriented text. Lines starting with '#' are comments.
// The first non-comment line declares the selection mode, either "Uniform" or
// "Weighted". Under Uniform every following line is one item name, taken
// verbatim. Under Weighted every following line is "name!!weight", where
// weight is a non-negative base-10 integer and "!!" is a literal two-character
// separator (no escaping of "!!" inside names is supported).
package loot

import "fmt"

// Mode is a table's selection mode, fixed by the header line.
type Mode uint8

const (
	ModeUniform Mode = iota
	ModeWeighted
)

// ParseMode maps a header line to a Mode. Matching is case-sensitive.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Uniform":
		return ModeUniform, nil
	case "Weighted":
		return ModeWeighted, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want \"Uniform\" or \"Weighted\")", s)
}

func (m Mode) String() string {
	switch m {
	case ModeUniform:
		return "Uniform"
	case ModeWeighted:
		return "Weighted"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Entry is one selectable item. Weight is meaningful only under ModeWeighted;
// a zero-weight entry is valid but can never be drawn.
type Entry struct {
	Name   string
	Weight int64
}

// Table is an immutable, append-ordered loot table. Entry order matches the
// source file but has no effect on selection probability. A Table is never
// mutated after Parse returns it, so it may be shared across goroutines
// without synchronization as long as each caller supplies its own RNG.
type Table struct {
	Mode    Mode
	Entries []Entry
}
