// Package attack_test - frequency analysis.
package attack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlcc/attack"
)

func TestFrequencies_CountsAndOrder(t *testing.T) {
	// B×3, A×2, C×1 regardless of case and punctuation.
	freqs, err := attack.Frequencies("b A b, c a B!")
	require.NoError(t, err)
	require.Len(t, freqs, 3)

	require.Equal(t, byte('B'), freqs[0].Letter)
	require.Equal(t, 3, freqs[0].Count)
	require.InDelta(t, 0.5, freqs[0].Frequency, 1e-12)

	require.Equal(t, byte('A'), freqs[1].Letter)
	require.Equal(t, 2, freqs[1].Count)

	require.Equal(t, byte('C'), freqs[2].Letter)
	require.Equal(t, 1, freqs[2].Count)
}

func TestFrequencies_TiesAlphabetical(t *testing.T) {
	freqs, err := attack.Frequencies("ZZAYYBXX") // Z,Y,X twice... A,B once
	require.NoError(t, err)
	require.Len(t, freqs, 5)

	// Equal counts order alphabetically: X,Y,Z then A,B.
	require.Equal(t, byte('X'), freqs[0].Letter)
	require.Equal(t, byte('Y'), freqs[1].Letter)
	require.Equal(t, byte('Z'), freqs[2].Letter)
	require.Equal(t, byte('A'), freqs[3].Letter)
	require.Equal(t, byte('B'), freqs[4].Letter)
}

func TestFrequencies_Empty(t *testing.T) {
	_, err := attack.Frequencies("123 !?")
	require.ErrorIs(t, err, attack.ErrEmptyText)

	_, err = attack.Frequencies("")
	require.ErrorIs(t, err, attack.ErrEmptyText)
}

func TestSuggestMapping_RankAlignment(t *testing.T) {
	// Q×3, W×2, E×1 → Q→E, W→T, E→A (reference order "ETA...").
	mapping, err := attack.SuggestMapping("QQQWWE")
	require.NoError(t, err)
	require.Len(t, mapping, 3)
	require.Equal(t, byte('E'), mapping['Q'])
	require.Equal(t, byte('T'), mapping['W'])
	require.Equal(t, byte('A'), mapping['E'])
}

func TestSuggestMapping_Empty(t *testing.T) {
	_, err := attack.SuggestMapping("...")
	require.ErrorIs(t, err, attack.ErrEmptyText)
}

func TestApplyMapping(t *testing.T) {
	mapping := map[byte]byte{'Q': 'E', 'W': 'T'}

	// Mapped letters translate, unmapped become '?', non-letters survive.
	// q→E, w→T, ' ', e→?, ' ', z→?, '!': output keeps the input length.
	require.Equal(t, "ET ? ?!", attack.ApplyMapping("qw e z!", mapping))
	require.Len(t, attack.ApplyMapping("qw e z!", mapping), len("qw e z!"))
	require.Equal(t, "", attack.ApplyMapping("", mapping))
}

func TestApplyMapping_RoundTripWithSuggestion(t *testing.T) {
	// A Caesar-free sanity loop: map through a suggestion and back through
	// its inverse; every letter of the input must survive.
	const text = "WKHTXLFNEURZQIRA"
	mapping, err := attack.SuggestMapping(text)
	require.NoError(t, err)

	decoded := attack.ApplyMapping(text, mapping)
	require.Len(t, decoded, len(text))
	require.NotContains(t, decoded, string(attack.Placeholder))
}
