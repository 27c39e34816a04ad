// Package attack - simulated-annealing transposition solver.
//
// For each candidate key length in the scanned range, the solver
// anneals over column read orders, decoding every candidate through the
// exact inverse zigzag transposition (mlcc.TranspositionKey.Decrypt) and
// scoring English-likeness normalized by length, so scores stay
// comparable across lengths. The single best (length, order) pair wins.
//
// Contracts:
//   - Input must be transposition-only ciphertext (the outermost MLCC
//     layer with substitution and Vigenère already undone — or not yet
//     applied). On full MLCC output the recovered text still carries
//     the two inner layers.
//   - Deterministic given Seed; every (length, restart) pair runs on an
//     independent derived stream and results reduce by pure max.
//
// Complexity: O(lengths · Restarts · Iterations · n).
package attack

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/mlcc"
	"github.com/katalvlaran/mlcc/alphabet"
)

// TranspositionOptions tunes CrackTransposition.
type TranspositionOptions struct {
	// MinKeyLen / MaxKeyLen bound the scanned column counts, inclusive.
	MinKeyLen int
	MaxKeyLen int
	// Iterations is the annealing step count per restart.
	Iterations int
	// Restarts is the number of independent starts per key length.
	Restarts int
	// Seed drives all randomness; 0 selects a fixed default stream.
	Seed int64
}

// DefaultTranspositionOptions returns the standard tuning: scan lengths
// 3..10 with 3000 iterations × 10 restarts each.
func DefaultTranspositionOptions() TranspositionOptions {
	return TranspositionOptions{MinKeyLen: 3, MaxKeyLen: 10, Iterations: 3000, Restarts: 10}
}

func (o TranspositionOptions) validate() error {
	if o.MinKeyLen < mlcc.MinTranspositionKeyLen || o.MaxKeyLen < o.MinKeyLen {
		return ErrBadOptions
	}
	if o.Iterations < 1 || o.Restarts < 1 {
		return ErrBadOptions
	}

	return nil
}

// decodeOrder inverts the zigzag transposition under a column read
// order. The order is always a valid permutation here, so key
// construction cannot fail.
func decodeOrder(ciphertext string, order []int) string {
	k, err := mlcc.TranspositionKeyFromOrder(order)
	if err != nil {
		return ""
	}

	return k.Decrypt(ciphertext)
}

// CrackTransposition scans candidate key lengths and anneals a column
// order for each, returning the best-scoring candidate overall.
//
// Errors: ErrBadOptions, ErrEmptyText, or ctx.Err() on cancellation.
func CrackTransposition(ctx context.Context, ciphertext string, opts TranspositionOptions) (TranspositionResult, error) {
	if err := opts.validate(); err != nil {
		return TranspositionResult{}, err
	}
	text := alphabet.Clean(ciphertext)
	if len(text) == 0 {
		return TranspositionResult{}, ErrEmptyText
	}

	var (
		base    = rngFromSeed(opts.Seed)
		best    = TranspositionResult{Score: math.Inf(-1)}
		keyLen  int
		restart int
	)
	for keyLen = opts.MinKeyLen; keyLen <= opts.MaxKeyLen; keyLen++ {
		for restart = 0; restart < opts.Restarts; restart++ {
			rng := deriveRNG(base, uint64(keyLen)<<16|uint64(restart))
			local, err := annealTransposition(ctx, text, keyLen, opts.Iterations, rng)
			if err != nil {
				return TranspositionResult{}, err
			}
			if local.Score > best.Score {
				best = local
			}
		}
	}

	return best, nil
}

// annealTransposition runs one restart at a fixed key length.
func annealTransposition(ctx context.Context, text string, keyLen, iterations int, rng *rand.Rand) (TranspositionResult, error) {
	var (
		curOrder = randomOrder(keyLen, rng)
		curPlain = decodeOrder(text, curOrder)
		curScore = scoreTransposition(curPlain)

		best = TranspositionResult{KeyLen: keyLen, Order: curOrder, Plaintext: curPlain, Score: curScore}
	)

	var (
		i         int
		candOrder []int
		candPlain string
		candScore float64
		delta     float64
		temp      float64
	)
	for i = 0; i < iterations; i++ {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return TranspositionResult{}, err
			}
		}

		candOrder = swapTwoInts(curOrder, rng)
		candPlain = decodeOrder(text, candOrder)
		candScore = scoreTransposition(candPlain)
		delta = candScore - curScore

		temp = math.Max(minTemperature, annealT0*(1-float64(i)/float64(iterations)))
		if delta > 0 || math.Exp(delta/temp) > rng.Float64() {
			curOrder, curPlain, curScore = candOrder, candPlain, candScore
		}

		if curScore > best.Score {
			best = TranspositionResult{KeyLen: keyLen, Order: curOrder, Plaintext: curPlain, Score: curScore}
		}
	}

	return best, nil
}
