package loot

import (
	"errors"
	"math"
	"math/rand"
)

// Selection failures. These abort only the failing call; the table stays
// valid for later picks.
var (
	ErrEmptyTable     = errors.New("loot table has no entries")
	ErrAllZeroWeights = errors.New("all weights are zero")
	ErrWeightOverflow = errors.New("weight sum overflows")
)

// Pick draws one entry name from the table using rng.
//
// Under ModeUniform every entry has probability exactly 1/n. Under
// ModeWeighted entry i has probability weight_i / sum(weights); zero-weight
// entries are never drawn. Pick reads the table and nothing else, so it may
// be called repeatedly — and concurrently, given per-caller RNGs — on the
// same table.
func (t *Table) Pick(rng *rand.Rand) (string, error) {
	if len(t.Entries) == 0 {
		return "", ErrEmptyTable
	}
	if t.Mode == ModeWeighted {
		return pickWeighted(t.Entries, rng)
	}
	return t.Entries[rng.Intn(len(t.Entries))].Name, nil
}

// pickWeighted rolls in [0, total) and walks the entries subtracting each
// weight until the roll goes negative. Exact discrete sampling: entry i owns
// the sub-range [sum(w_0..w_i-1), sum(w_0..w_i)), so zero-weight entries own
// an empty range and can never win.
func pickWeighted(entries []Entry, rng *rand.Rand) (string, error) {
	var total int64
	for _, e := range entries {
		if e.Weight > math.MaxInt64-total {
			return "", ErrWeightOverflow
		}
		total += e.Weight
	}
	if total == 0 {
		return "", ErrAllZeroWeights
	}

	roll := rng.Int63n(total)
	for _, e := range entries {
		roll -= e.Weight
		if roll < 0 {
			return e.Name, nil
		}
	}
	// Unreachable: roll < total and the weights sum to total.
	return entries[len(entries)-1].Name, nil
}
