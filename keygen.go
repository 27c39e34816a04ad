// Package mlcc - random key generation.
//
// Generators take an explicit *rand.Rand so callers control the seed;
// nil falls back to a fixed deterministic stream (never wall-clock).
// Outputs always satisfy the corresponding constructor's validation.
package mlcc

import (
	"math/rand"

	"github.com/katalvlaran/mlcc/alphabet"
)

// Default key-length bounds for the generators.
const (
	DefaultVigenereMinLen      = 10
	DefaultVigenereMaxLen      = 20
	DefaultTranspositionMinLen = 3
	DefaultTranspositionMaxLen = 6
)

// defaultKeygenSeed is the fixed seed used when callers pass a nil RNG.
// Arbitrary but stable: same policy as the attack package's RNG factory.
const defaultKeygenSeed int64 = 1

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(defaultKeygenSeed))
}

// GenerateSubstitutionKey returns a uniformly random 26-letter
// permutation (Fisher–Yates over the alphabet).
//
// Complexity: O(26).
func GenerateSubstitutionKey(rng *rand.Rand) string {
	var (
		r       = rngOrDefault(rng)
		letters = []byte(alphabet.Letters)
		i       int
		j       int
	)
	for i = len(letters) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}

// GenerateVigenereKey returns a random uppercase key whose length is
// uniform in [minLen, maxLen].
//
// Errors: KeyError{Kind: KindVigenere} when minLen < MinVigenereKeyLen
// or maxLen < minLen.
func GenerateVigenereKey(rng *rand.Rand, minLen, maxLen int) (string, error) {
	if minLen < MinVigenereKeyLen || maxLen < minLen {
		return "", KeyError{Kind: KindVigenere, Reason: "generator length bounds out of range"}
	}

	var (
		r   = rngOrDefault(rng)
		out = make([]byte, minLen+r.Intn(maxLen-minLen+1))
		i   int
	)
	for i = range out {
		out[i] = alphabet.Letters[r.Intn(alphabet.Size)]
	}

	return string(out), nil
}

// GenerateTranspositionKey returns a shuffled sequence of the unique
// weights 1..n for a length n uniform in [minLen, maxLen].
//
// Errors: KeyError{Kind: KindTransposition} when minLen <
// MinTranspositionKeyLen or maxLen < minLen.
func GenerateTranspositionKey(rng *rand.Rand, minLen, maxLen int) ([]int, error) {
	if minLen < MinTranspositionKeyLen || maxLen < minLen {
		return nil, KeyError{Kind: KindTransposition, Reason: "generator length bounds out of range"}
	}

	var (
		r   = rngOrDefault(rng)
		key = make([]int, minLen+r.Intn(maxLen-minLen+1))
		i   int
		j   int
	)
	for i = range key {
		key[i] = i + 1
	}
	for i = len(key) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		key[i], key[j] = key[j], key[i]
	}

	return key, nil
}
