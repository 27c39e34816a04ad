// Package mlcc_test - modified Vigenère stage.
//
// The reference model used below derives the effective key index in
// closed form: the rotation after i processed characters equals ⌊i/5⌋,
// so key index = (i + ⌊i/5⌋) mod len(key). The stage itself maintains
// the rotation incrementally; agreement across lengths that straddle
// the i≡4 (mod 5) boundaries proves the increment fires exactly there.
package mlcc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlcc"
	"github.com/katalvlaran/mlcc/alphabet"
)

// refVigenereEncrypt is an independent closed-form model of the stage.
func refVigenereEncrypt(text, key string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		eff := key[(i+i/5)%len(key)]
		modifier := i%5 + 1
		out[i] = alphabet.Decode(alphabet.Encode(text[i]) + alphabet.Encode(eff)*modifier)
	}

	return string(out)
}

func TestVigenere_MatchesClosedFormModel(t *testing.T) {
	k, err := mlcc.NewVigenereKey("KEYKEYKEYK")
	require.NoError(t, err)

	// Lengths 4,5,6,9,10,11 cross every rotation boundary of interest.
	base := strings.Repeat("THEQUICKBROWNFOX", 4)
	for _, n := range []int{1, 4, 5, 6, 9, 10, 11, 25, 26, 64} {
		text := base[:n]
		require.Equal(t, refVigenereEncrypt(text, "KEYKEYKEYK"), k.Encrypt(text),
			"length %d disagrees with closed-form rotation model", n)
	}
}

func TestVigenere_RotationBoundary(t *testing.T) {
	// With key "BAAAAAAAAA" only key index 0 shifts (by 1), so an all-'A'
	// plaintext stays 'A' except where (i+⌊i/5⌋)%10 == 0. Those positions
	// are 0, 9, 17, 25, 34, 42 within the first 50 characters; the output
	// letter there is 'A'+modifier, exposing both the rotation jumps and
	// the per-position multiplier.
	k, err := mlcc.NewVigenereKey("BAAAAAAAAA")
	require.NoError(t, err)

	hits := map[int]byte{
		0:  'B', // modifier 1
		9:  'F', // modifier 5
		17: 'D', // modifier 3
		25: 'B', // modifier 1
		34: 'F', // modifier 5
		42: 'D', // modifier 3
	}

	enc := k.Encrypt(strings.Repeat("A", 50))
	for i := 0; i < len(enc); i++ {
		want := byte('A')
		if c, ok := hits[i]; ok {
			want = c
		}
		require.Equal(t, string(want), string(enc[i]), "position %d", i)
	}
}

func TestVigenere_Deterministic(t *testing.T) {
	k, err := mlcc.NewVigenereKey("LEMONLEMONLEMON")
	require.NoError(t, err)

	text := alphabet.Clean("The same cleaned text, twice.")
	require.Equal(t, k.Encrypt(text), k.Encrypt(text))
}

func TestVigenere_RoundTrip(t *testing.T) {
	keys := []string{"KEYKEYKEYK", "ZZZZZZZZZZZZ", "QWERTYUIOPASDFGHJKLZ"}
	texts := []string{
		"",
		"A",
		"HELLO",
		"HELLOWORLD",
		strings.Repeat("ATTACKATDAWN", 20),
	}

	for _, raw := range keys {
		k, err := mlcc.NewVigenereKey(raw)
		require.NoError(t, err)
		for _, text := range texts {
			require.Equal(t, text, k.Decrypt(k.Encrypt(text)), "key=%s len=%d", raw, len(text))
		}
	}
}
