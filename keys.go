// Package mlcc - key types and eager validation.
//
// All three key types are immutable after construction. Validation
// happens exactly once, in the constructor, and reports failures as
// KeyError (wrapping ErrInvalidKey); no per-character checks run inside
// the transform hot paths.
package mlcc

import (
	"sort"
	"strings"

	"github.com/katalvlaran/mlcc/alphabet"
)

const (
	// MinVigenereKeyLen is the minimum accepted Vigenère key length.
	MinVigenereKeyLen = 10
	// MinTranspositionKeyLen is the minimum accepted number of grid columns.
	MinTranspositionKeyLen = 3
)

// SubstitutionKey is a bijection over the 26-letter alphabet.
// letters[alphabet.Encode(p)] is the cipher letter for plain letter p;
// the inverse table is built once here, never per call.
type SubstitutionKey struct {
	letters string
	inverse [alphabet.Size]byte
}

// NewSubstitutionKey validates and builds a substitution key from a
// 26-letter permutation string (case-insensitive).
//
// Errors: KeyError{Kind: KindSubstitution} when the key is not exactly
// 26 distinct letters.
//
// Complexity: O(26).
func NewSubstitutionKey(key string) (*SubstitutionKey, error) {
	up := strings.ToUpper(key)
	if len(up) != alphabet.Size {
		return nil, KeyError{Kind: KindSubstitution, Reason: "must be exactly 26 characters"}
	}

	var (
		seen [alphabet.Size]bool
		k    SubstitutionKey
		i    int
		c    byte
	)
	for i = 0; i < alphabet.Size; i++ {
		c = up[i]
		if c < 'A' || c > 'Z' {
			return nil, KeyError{Kind: KindSubstitution, Reason: "must contain letters only"}
		}
		if seen[alphabet.Encode(c)] {
			return nil, KeyError{Kind: KindSubstitution, Reason: "must contain 26 distinct letters"}
		}
		seen[alphabet.Encode(c)] = true
		k.inverse[alphabet.Encode(c)] = alphabet.Letters[i]
	}
	k.letters = up

	return &k, nil
}

// String returns the plain→cipher permutation as a 26-letter string.
func (k *SubstitutionKey) String() string { return k.letters }

// VigenereKey is an ordered sequence of ≥10 letters. Its length sets the
// modulus for the rotating key index of the Vigenère stage.
type VigenereKey struct {
	letters string
}

// NewVigenereKey validates and builds a Vigenère key (case-insensitive).
//
// Errors: KeyError{Kind: KindVigenere} when shorter than
// MinVigenereKeyLen or containing non-letters.
//
// Complexity: O(len(key)).
func NewVigenereKey(key string) (*VigenereKey, error) {
	up := strings.ToUpper(key)
	if len(up) < MinVigenereKeyLen {
		return nil, KeyError{Kind: KindVigenere, Reason: "must be at least 10 characters"}
	}

	var i int
	for i = 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return nil, KeyError{Kind: KindVigenere, Reason: "must contain letters only"}
		}
	}

	return &VigenereKey{letters: up}, nil
}

// Len returns the key length (the rotation modulus).
func (k *VigenereKey) Len() int { return len(k.letters) }

// String returns the key letters.
func (k *VigenereKey) String() string { return k.letters }

// TranspositionKey is an ordered sequence of ≥3 integer weights; its
// length is the grid column count. Weights need not be unique: ties
// break by original column index (stable sort), so the derived read
// order is always well defined.
type TranspositionKey struct {
	weights []int
	order   []int // column indices sorted ascending by weight, stable
}

// NewTranspositionKey validates and builds a transposition key,
// precomputing the column read order.
//
// Errors: KeyError{Kind: KindTransposition} when fewer than
// MinTranspositionKeyLen weights are given.
//
// Complexity: O(C log C) for the stable sort.
func NewTranspositionKey(weights []int) (*TranspositionKey, error) {
	if len(weights) < MinTranspositionKeyLen {
		return nil, KeyError{Kind: KindTransposition, Reason: "must have at least 3 elements"}
	}

	// Defensive copy: keys are immutable after construction.
	w := make([]int, len(weights))
	copy(w, weights)

	order := make([]int, len(w))
	var i int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return w[order[a]] < w[order[b]] })

	return &TranspositionKey{weights: w, order: order}, nil
}

// TranspositionKeyFromOrder builds a key whose derived column read order
// is exactly the given permutation of column indices. Used by the
// transposition solver, which searches over read orders directly.
//
// Errors: KeyError{Kind: KindTransposition} when order is too short or
// not a permutation of 0..len(order)-1.
//
// Complexity: O(C log C).
func TranspositionKeyFromOrder(order []int) (*TranspositionKey, error) {
	if len(order) < MinTranspositionKeyLen {
		return nil, KeyError{Kind: KindTransposition, Reason: "must have at least 3 elements"}
	}

	var (
		weights = make([]int, len(order))
		seen    = make([]bool, len(order))
		rank    int
		col     int
	)
	for rank, col = range order {
		if col < 0 || col >= len(order) || seen[col] {
			return nil, KeyError{Kind: KindTransposition, Reason: "order must be a permutation of column indices"}
		}
		seen[col] = true
		weights[col] = rank
	}

	return NewTranspositionKey(weights)
}

// Columns returns the grid column count.
func (k *TranspositionKey) Columns() int { return len(k.weights) }

// Weights returns a copy of the key weights.
func (k *TranspositionKey) Weights() []int {
	w := make([]int, len(k.weights))
	copy(w, k.weights)

	return w
}

// ColumnOrder returns a copy of the derived column read order.
func (k *TranspositionKey) ColumnOrder() []int {
	o := make([]int, len(k.order))
	copy(o, k.order)

	return o
}
