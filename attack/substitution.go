// Package attack - simulated-annealing substitution solver.
//
// Search space: the 26! plain→cipher permutations. The neighbour move
// swaps two key positions; acceptance follows simulated annealing with
// a linear temperature ramp from annealT0 down to zero across the
// iteration budget, so late iterations degenerate to pure hill
// climbing. An occasional unconditional "shake" swap perturbs the
// current key outside the acceptance rule to escape shallow basins.
//
// Contracts:
//   - Input must be substitution-only ciphertext. Against full MLCC
//     output, undo the transposition and Vigenère layers first (feed
//     Encryption.Substituted, or chain CrackTransposition +
//     RecoverVigenereKey).
//   - Deterministic given Seed; restarts use derived independent
//     streams and reduce by best score, so order never matters.
//
// Complexity: O(Restarts · Iterations · n) over cleaned length n.
package attack

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/mlcc/alphabet"
)

// Annealing policy shared by the stochastic solvers.
const (
	// annealT0 is the initial temperature of the linear cooling ramp.
	annealT0 = 1.0
	// minTemperature floors the acceptance denominator so the rule stays
	// well-posed at the end of the ramp.
	minTemperature = 1e-6
	// shakeProbability is the chance of an unconditional extra swap at
	// each shake checkpoint.
	shakeProbability = 0.003
	// shakeCheckpoints divides the iteration budget into this many
	// intervals; a shake roll happens once per interval boundary.
	shakeCheckpoints = 5
	// cancelCheckMask throttles context checks to every 256 iterations.
	cancelCheckMask = 255
)

// SubstitutionOptions tunes CrackSubstitution.
type SubstitutionOptions struct {
	// Iterations is the annealing step count per restart.
	Iterations int
	// Restarts is the number of independent random starts.
	Restarts int
	// Seed drives all randomness; 0 selects a fixed default stream.
	Seed int64
}

// DefaultSubstitutionOptions returns the standard tuning
// (3000 iterations × 30 restarts).
func DefaultSubstitutionOptions() SubstitutionOptions {
	return SubstitutionOptions{Iterations: 3000, Restarts: 30}
}

func (o SubstitutionOptions) validate() error {
	if o.Iterations < 1 || o.Restarts < 1 {
		return ErrBadOptions
	}

	return nil
}

// decodeWithKey decodes ciphertext (cleaned, uppercase) under a
// plain→cipher key by inverting the permutation once per call.
func decodeWithKey(ciphertext string, key []byte) string {
	var inverse [alphabet.Size]byte
	var i int
	for i = 0; i < alphabet.Size; i++ {
		inverse[alphabet.Encode(key[i])] = alphabet.Letters[i]
	}

	out := make([]byte, len(ciphertext))
	for i = 0; i < len(ciphertext); i++ {
		out[i] = inverse[alphabet.Encode(ciphertext[i])]
	}

	return string(out)
}

// CrackSubstitution searches for the substitution key that makes
// ciphertext decode to the most English-looking text.
//
// The solver never fails on hard input — a hopeless search just returns
// a low-scoring candidate.
//
// Errors: ErrBadOptions, ErrEmptyText, or ctx.Err() on cancellation.
func CrackSubstitution(ctx context.Context, ciphertext string, opts SubstitutionOptions) (SubstitutionResult, error) {
	if err := opts.validate(); err != nil {
		return SubstitutionResult{}, err
	}
	text := alphabet.Clean(ciphertext)
	if len(text) == 0 {
		return SubstitutionResult{}, ErrEmptyText
	}

	var (
		base        = rngFromSeed(opts.Seed)
		best        = SubstitutionResult{Score: math.Inf(-1)}
		shakeStride = opts.Iterations / shakeCheckpoints
		restart     int
	)
	if shakeStride < 1 {
		shakeStride = 1
	}

	for restart = 0; restart < opts.Restarts; restart++ {
		local, err := annealSubstitution(ctx, text, opts.Iterations, shakeStride, deriveRNG(base, uint64(restart)))
		if err != nil {
			return SubstitutionResult{}, err
		}
		if local.Score > best.Score {
			best = local
		}
	}

	return best, nil
}

// annealSubstitution runs one restart and returns its best candidate.
func annealSubstitution(ctx context.Context, text string, iterations, shakeStride int, rng *rand.Rand) (SubstitutionResult, error) {
	var (
		curKey   = randomPermutation(rng)
		curPlain = decodeWithKey(text, curKey)
		curScore = scoreSubstitution(curPlain)

		bestKey   = curKey
		bestPlain = curPlain
		bestScore = curScore
	)

	var (
		i         int
		candKey   []byte
		candPlain string
		candScore float64
		delta     float64
		temp      float64
	)
	for i = 0; i < iterations; i++ {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return SubstitutionResult{}, err
			}
		}

		candKey = swapTwoBytes(curKey, rng)
		candPlain = decodeWithKey(text, candKey)
		candScore = scoreSubstitution(candPlain)
		delta = candScore - curScore

		// Linear cooling: temp falls from annealT0 to ~0 across the run.
		temp = math.Max(minTemperature, annealT0*(1-float64(i)/float64(iterations)))
		if delta > 0 || math.Exp(delta/temp) > rng.Float64() {
			curKey, curPlain, curScore = candKey, candPlain, candScore
			if curScore > bestScore {
				bestKey, bestPlain, bestScore = curKey, curPlain, curScore
			}
		}

		// Shake: rare unconditional perturbation, outside the acceptance rule.
		if i%shakeStride == 0 && rng.Float64() < shakeProbability {
			curKey = swapTwoBytes(curKey, rng)
			curPlain = decodeWithKey(text, curKey)
			curScore = scoreSubstitution(curPlain)
		}
	}

	return SubstitutionResult{Key: string(bestKey), Plaintext: bestPlain, Score: bestScore}, nil
}
