// Package mlcc_test - key construction and validation.
package mlcc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlcc"
)

const reverseAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBA"

func TestNewSubstitutionKey_Valid(t *testing.T) {
	k, err := mlcc.NewSubstitutionKey(reverseAlphabet)
	require.NoError(t, err)
	require.Equal(t, reverseAlphabet, k.String())

	// Case-insensitive input is normalized.
	k, err = mlcc.NewSubstitutionKey("zyxwvutsrqponmlkjihgfedcba")
	require.NoError(t, err)
	require.Equal(t, reverseAlphabet, k.String())
}

func TestNewSubstitutionKey_Invalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"too short", "ABC"},
		{"too long", reverseAlphabet + "A"},
		{"duplicate letter", "AACDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"non-letter", "ZYXWVUTSRQPONMLKJIHGFEDCB1"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mlcc.NewSubstitutionKey(tc.key)
			require.Error(t, err)
			require.ErrorIs(t, err, mlcc.ErrInvalidKey)

			var ke mlcc.KeyError
			require.True(t, errors.As(err, &ke))
			require.Equal(t, mlcc.KindSubstitution, ke.Kind)
			require.NotEmpty(t, ke.Reason)
		})
	}
}

func TestNewVigenereKey_Bounds(t *testing.T) {
	_, err := mlcc.NewVigenereKey("SHORTKEY") // 8 < 10
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)

	var ke mlcc.KeyError
	require.True(t, errors.As(err, &ke))
	require.Equal(t, mlcc.KindVigenere, ke.Kind)

	k, err := mlcc.NewVigenereKey("keykeykeyk")
	require.NoError(t, err)
	require.Equal(t, "KEYKEYKEYK", k.String())
	require.Equal(t, 10, k.Len())

	_, err = mlcc.NewVigenereKey("KEYKEYKEY1")
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)
}

func TestNewTranspositionKey_Bounds(t *testing.T) {
	_, err := mlcc.NewTranspositionKey([]int{1, 2})
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)

	var ke mlcc.KeyError
	require.True(t, errors.As(err, &ke))
	require.Equal(t, mlcc.KindTransposition, ke.Kind)

	k, err := mlcc.NewTranspositionKey([]int{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3, k.Columns())
	require.Equal(t, []int{1, 2, 0}, k.ColumnOrder())
}

func TestTranspositionKey_StableTieBreak(t *testing.T) {
	// Equal weights keep original column index order.
	k, err := mlcc.NewTranspositionKey([]int{2, 1, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 3}, k.ColumnOrder())
}

func TestTranspositionKey_Immutable(t *testing.T) {
	weights := []int{3, 1, 2}
	k, err := mlcc.NewTranspositionKey(weights)
	require.NoError(t, err)

	// Mutating the caller's slice or returned copies must not affect the key.
	weights[0] = 99
	k.Weights()[1] = 99
	k.ColumnOrder()[0] = 99
	require.Equal(t, []int{3, 1, 2}, k.Weights())
	require.Equal(t, []int{1, 2, 0}, k.ColumnOrder())
}

func TestTranspositionKeyFromOrder(t *testing.T) {
	k, err := mlcc.TranspositionKeyFromOrder([]int{2, 0, 3, 1})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 3, 1}, k.ColumnOrder())

	_, err = mlcc.TranspositionKeyFromOrder([]int{0, 0, 1})
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)

	_, err = mlcc.TranspositionKeyFromOrder([]int{0, 1, 5})
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)

	_, err = mlcc.TranspositionKeyFromOrder([]int{0, 1})
	require.ErrorIs(t, err, mlcc.ErrInvalidKey)
}

func TestSubstitutionKey_Bijection(t *testing.T) {
	keys := []string{
		reverseAlphabet,
		"QWERTYUIOPASDFGHJKLZXCVBNM",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ", // identity permutation is a valid key
	}

	const all = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, raw := range keys {
		k, err := mlcc.NewSubstitutionKey(raw)
		require.NoError(t, err)
		require.Equal(t, all, k.Decrypt(k.Encrypt(all)), "key %s", raw)
		require.Equal(t, all, k.Encrypt(k.Decrypt(all)), "key %s", raw)
	}
}
