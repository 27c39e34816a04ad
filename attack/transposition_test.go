// Package attack_test - transposition solver.
package attack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlcc"
	"github.com/katalvlaran/mlcc/alphabet"
	"github.com/katalvlaran/mlcc/attack"
)

// englishText is long and trigram-heavy enough that only the correct
// column untangling scores on the word component; the letter component
// is permutation-invariant and cannot break ties.
const englishText = "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG AND THEN " +
	"THE DOG RAN AWAY WITH THE FOX AND THEY WERE ALL HAPPY TOGETHER IN " +
	"THE FOREST ALL THE DAY LONG AND ALL WAS WELL WITH THEM"

func TestCrackTransposition_RecoversKnownOrder(t *testing.T) {
	// Weights [2,3,1] derive read order [2,0,1]. With only 3! = 6 orders
	// per restart and a long English input, the annealing walk visits the
	// true order with near-certainty and it scores strictly best.
	key, err := mlcc.NewTranspositionKey([]int{2, 3, 1})
	require.NoError(t, err)

	cleaned := alphabet.Clean(englishText)
	cipher := key.Encrypt(cleaned)

	res, err := attack.CrackTransposition(context.Background(), cipher, attack.TranspositionOptions{
		MinKeyLen:  3,
		MaxKeyLen:  3,
		Iterations: 2000,
		Restarts:   8,
		Seed:       99,
	})
	require.NoError(t, err)

	require.Equal(t, 3, res.KeyLen)
	require.Equal(t, []int{2, 0, 1}, res.Order)
	require.Equal(t, cleaned, res.Plaintext)
	require.Greater(t, res.Score, 0.0)
}

func TestCrackTransposition_DeterministicUnderSeed(t *testing.T) {
	cipher := alphabet.Clean(englishText)
	opts := attack.TranspositionOptions{MinKeyLen: 3, MaxKeyLen: 5, Iterations: 400, Restarts: 3, Seed: 77}

	a, err := attack.CrackTransposition(context.Background(), cipher, opts)
	require.NoError(t, err)
	b, err := attack.CrackTransposition(context.Background(), cipher, opts)
	require.NoError(t, err)

	require.Equal(t, a.KeyLen, b.KeyLen)
	require.Equal(t, a.Order, b.Order)
	require.Equal(t, a.Plaintext, b.Plaintext)
	require.Equal(t, a.Score, b.Score)
}

func TestCrackTransposition_ResultShape(t *testing.T) {
	cipher := alphabet.Clean(englishText)
	res, err := attack.CrackTransposition(context.Background(), cipher, attack.TranspositionOptions{
		MinKeyLen: 3, MaxKeyLen: 6, Iterations: 200, Restarts: 2, Seed: 5,
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, res.KeyLen, 3)
	require.LessOrEqual(t, res.KeyLen, 6)
	require.Len(t, res.Order, res.KeyLen)

	// Order must be a permutation of 0..KeyLen-1.
	seen := make([]bool, res.KeyLen)
	for _, col := range res.Order {
		require.GreaterOrEqual(t, col, 0)
		require.Less(t, col, res.KeyLen)
		require.False(t, seen[col])
		seen[col] = true
	}

	// Plaintext must be exactly the decode of the input under Order.
	k, err := mlcc.TranspositionKeyFromOrder(res.Order)
	require.NoError(t, err)
	require.Equal(t, k.Decrypt(cipher), res.Plaintext)
}

func TestCrackTransposition_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := attack.CrackTransposition(ctx, "....", attack.DefaultTranspositionOptions())
	require.ErrorIs(t, err, attack.ErrEmptyText)

	_, err = attack.CrackTransposition(ctx, "ABCDEF", attack.TranspositionOptions{
		MinKeyLen: 2, MaxKeyLen: 5, Iterations: 10, Restarts: 1, // min below 3
	})
	require.ErrorIs(t, err, attack.ErrBadOptions)

	_, err = attack.CrackTransposition(ctx, "ABCDEF", attack.TranspositionOptions{
		MinKeyLen: 5, MaxKeyLen: 4, Iterations: 10, Restarts: 1,
	})
	require.ErrorIs(t, err, attack.ErrBadOptions)
}

func TestCrackTransposition_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := attack.CrackTransposition(ctx, alphabet.Clean(englishText), attack.DefaultTranspositionOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultTranspositionOptions(t *testing.T) {
	opts := attack.DefaultTranspositionOptions()
	require.Equal(t, 3, opts.MinKeyLen)
	require.Equal(t, 10, opts.MaxKeyLen)
	require.Equal(t, 3000, opts.Iterations)
	require.Equal(t, 10, opts.Restarts)
}
