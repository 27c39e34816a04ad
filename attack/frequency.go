// Package attack - letter frequency analysis.
//
// A heuristic first step against the substitution layer: rank the
// observed cipher letters by count and align that ranking against the
// fixed English frequency order. No correctness guarantee — the
// suggestion is a starting point for manual or stochastic refinement.
package attack

import (
	"sort"

	"github.com/katalvlaran/mlcc/alphabet"
)

// ReferenceFrequencyOrder is the standard English letters sorted by
// frequency, high to low.
const ReferenceFrequencyOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// Placeholder marks letters a mapping cannot decode.
const Placeholder byte = '?'

// Frequencies computes the letter histogram of text, sorted by
// descending count; equal counts order alphabetically (stable,
// documented tie-break).
//
// Errors: ErrEmptyText when text holds no letters.
//
// Complexity: O(n + 26 log 26).
func Frequencies(text string) ([]LetterFreq, error) {
	cleaned := alphabet.Clean(text)
	if len(cleaned) == 0 {
		return nil, ErrEmptyText
	}

	var (
		counts [alphabet.Size]int
		i      int
	)
	for i = 0; i < len(cleaned); i++ {
		counts[alphabet.Encode(cleaned[i])]++
	}

	// Built in alphabetical order; the stable sort on count therefore
	// leaves ties alphabetical.
	out := make([]LetterFreq, 0, alphabet.Size)
	total := float64(len(cleaned))
	for i = 0; i < alphabet.Size; i++ {
		if counts[i] == 0 {
			continue
		}
		out = append(out, LetterFreq{
			Letter:    alphabet.Decode(i),
			Count:     counts[i],
			Frequency: float64(counts[i]) / total,
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })

	return out, nil
}

// SuggestMapping proposes a cipher→plain mapping by pairing the
// observed letters, ranked by descending frequency, with
// ReferenceFrequencyOrder. Only letters present in text are mapped;
// ranks beyond the reference order (structurally impossible for A..Z
// input, but guarded) map to Placeholder.
//
// Errors: ErrEmptyText when text holds no letters.
func SuggestMapping(text string) (map[byte]byte, error) {
	freqs, err := Frequencies(text)
	if err != nil {
		return nil, err
	}

	var (
		mapping = make(map[byte]byte, len(freqs))
		rank    int
	)
	for rank = 0; rank < len(freqs); rank++ {
		if rank < len(ReferenceFrequencyOrder) {
			mapping[freqs[rank].Letter] = ReferenceFrequencyOrder[rank]
		} else {
			mapping[freqs[rank].Letter] = Placeholder
		}
	}

	return mapping, nil
}

// ApplyMapping decodes text under a cipher→plain mapping: letters are
// uppercased and mapped (Placeholder when absent from the mapping);
// non-letters pass through untouched for readability.
//
// Complexity: O(n).
func ApplyMapping(text string, mapping map[byte]byte) string {
	out := make([]byte, len(text))

	var (
		i int
		c byte
		p byte
	)
	for i = 0; i < len(text); i++ {
		c = text[i]
		if c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		if c < 'A' || c > 'Z' {
			out[i] = text[i]
			continue
		}
		p = Placeholder
		if m, ok := mapping[c]; ok {
			p = m
		}
		out[i] = p
	}

	return string(out)
}
