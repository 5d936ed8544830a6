package loot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ─── headers and comments ────────────────────────────────────────────────────

func TestParseHeader(t *testing.T) {
	cases := []struct {
		name  string
		input string
		mode  Mode
	}{
		{"uniform header", "Uniform\nsword\n", ModeUniform},
		{"weighted header", "Weighted\nsword!!3\n", ModeWeighted},
		{"comments before header", "# a\n# b\nUniform\nsword\n", ModeUniform},
		{"comment between data lines", "Weighted\n# skip me\nsword!!3\n", ModeWeighted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if table.Mode != tc.mode {
				t.Errorf("mode = %v, want %v", table.Mode, tc.mode)
			}
			if len(table.Entries) != 1 || table.Entries[0].Name != "sword" {
				t.Errorf("entries = %+v, want single \"sword\"", table.Entries)
			}
		})
	}
}

func TestParseBadHeader(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown keyword", "Random\nsword\n"},
		{"wrong case", "weighted\nsword!!3\n"},
		{"data line first", "sword!!3\nWeighted\n"},
		{"blank first line", "\nUniform\nsword\n"},
		{"empty input", ""},
		{"comments only", "# nothing here\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, ErrInvalidHeader) {
				t.Errorf("err = %v, want ErrInvalidHeader", err)
			}
		})
	}
}

// ─── weighted data lines ─────────────────────────────────────────────────────

func TestParseWeighted(t *testing.T) {
	input := "Weighted\nsword!!10\nshield!!5\npotion!!0\n"
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Entry{
		{Name: "sword", Weight: 10},
		{Name: "shield", Weight: 5},
		{Name: "potion", Weight: 0},
	}
	if len(table.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(table.Entries), len(want))
	}
	for i, e := range table.Entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestParseWeightedErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"missing separator", "Weighted\nsword-10\n", ErrMalformedLine},
		{"too many separators", "Weighted\nsword!!10!!extra\n", ErrMalformedLine},
		{"blank data line", "Weighted\n\n", ErrMalformedLine},
		{"non-integer weight", "Weighted\nsword!!heavy\n", ErrInvalidWeight},
		{"negative weight", "Weighted\nsword!!-1\n", ErrInvalidWeight},
		{"float weight", "Weighted\nsword!!1.5\n", ErrInvalidWeight},
		{"empty weight token", "Weighted\nsword!!\n", ErrInvalidWeight},
		{"weight above 32 bits", "Weighted\nsword!!4294967296\n", ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseErrorsCarryLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("# comment\nWeighted\nsword!!10\nbroken\n"))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error %q does not name line 4", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not quote the offending line", err)
	}
}

// ─── uniform data lines ──────────────────────────────────────────────────────

func TestParseUniformVerbatim(t *testing.T) {
	// Uniform lines are names as-is: internal whitespace, separators, emoji.
	input := "Uniform\nrusty sword\npotion!!of healing\n🗡️\n"
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"rusty sword", "potion!!of healing", "🗡️"}
	for i, name := range want {
		if table.Entries[i].Name != name {
			t.Errorf("entry %d = %q, want %q", i, table.Entries[i].Name, name)
		}
	}
}

// ─── leniency and determinism ────────────────────────────────────────────────

func TestParseSkipsUndecodableLines(t *testing.T) {
	// The \xff byte is invalid UTF-8; that line is skipped, the rest parse.
	input := "Weighted\nsword!!10\n\xff\xfe!!9\nshield!!5\n"
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(table.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(table.Entries))
	}
	if table.Entries[0].Name != "sword" || table.Entries[1].Name != "shield" {
		t.Errorf("entries = %+v", table.Entries)
	}
}

func TestParseEmptyTableIsValid(t *testing.T) {
	table, err := Parse(strings.NewReader("# nothing but a header\nWeighted\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(table.Entries) != 0 {
		t.Errorf("got %d entries, want 0", len(table.Entries))
	}
}

func TestParseDeterministic(t *testing.T) {
	input := "Weighted\na!!1\nb!!2\nc!!3\n"
	first, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for n := 0; n < 5; n++ {
		again, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if again.Mode != first.Mode || len(again.Entries) != len(first.Entries) {
			t.Fatalf("tables differ: %+v vs %+v", again, first)
		}
		for i := range again.Entries {
			if again.Entries[i] != first.Entries[i] {
				t.Errorf("entry %d differs: %+v vs %+v", i, again.Entries[i], first.Entries[i])
			}
		}
	}
}

func TestParseFiles(t *testing.T) {
	cases := []struct {
		file    string
		mode    Mode
		entries int
	}{
		{"weighted.txt", ModeWeighted, 3},
		{"uniform.txt", ModeUniform, 3},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			f, err := os.Open(filepath.Join("testdata", tc.file))
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			table, err := Parse(f)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if table.Mode != tc.mode || len(table.Entries) != tc.entries {
				t.Errorf("got mode=%v entries=%d, want mode=%v entries=%d",
					table.Mode, len(table.Entries), tc.mode, tc.entries)
			}
		})
	}
}
