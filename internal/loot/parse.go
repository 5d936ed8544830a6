package loot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	commentPrefix   = "#"
	weightSeparator = "!!"
)

// Structural parse failures. Parse wraps these with the offending line number
// and content; match with errors.Is.
var (
	ErrInvalidHeader = errors.New("invalid table header")
	ErrMalformedLine = errors.New("malformed weighted line")
	ErrInvalidWeight = errors.New("invalid weight")
)

// Parse reads a loot table from r.
//
// Structural errors (bad header, malformed weighted line, bad weight) abort
// the parse; no partial table is returned. Lines that are not valid UTF-8 are
// skipped silently — a deliberate best-effort leniency for byte-level decode
// problems, distinct from structural errors. A table with a valid header and
// zero data lines parses fine; it fails only when picked from.
func Parse(r io.Reader) (*Table, error) {
	var (
		mode      Mode
		gotHeader bool
		entries   []Entry
		lineNo    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !utf8.ValidString(line) {
			continue // undecodable line: skip, keep going
		}
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if !gotHeader {
			m, err := ParseMode(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrInvalidHeader)
			}
			mode = m
			gotHeader = true
			continue
		}

		switch mode {
		case ModeWeighted:
			entry, err := parseWeightedLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			entries = append(entries, entry)
		case ModeUniform:
			// The whole line is the item name, internal whitespace and all.
			entries = append(entries, Entry{Name: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if !gotHeader {
		return nil, fmt.Errorf("missing mode header (first non-comment line must be \"Uniform\" or \"Weighted\"): %w", ErrInvalidHeader)
	}

	return &Table{Mode: mode, Entries: entries}, nil
}

// parseWeightedLine splits "name!!weight" into an Entry. The weight must be a
// non-negative base-10 integer that fits in 32 bits.
func parseWeightedLine(line string) (Entry, error) {
	tokens := strings.Split(line, weightSeparator)
	if len(tokens) != 2 {
		return Entry{}, fmt.Errorf("%q: want exactly one %q separator: %w", line, weightSeparator, ErrMalformedLine)
	}
	w, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("%q: weight %q: %w", line, tokens[1], ErrInvalidWeight)
	}
	return Entry{Name: tokens[0], Weight: int64(w)}, nil
}
