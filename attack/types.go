package attack

import "errors"

var (
	// ErrEmptyText indicates the input held no alphabetic content. It is
	// a benign empty-result state, not a search failure.
	ErrEmptyText = errors.New("attack: no alphabetic content in input")

	// ErrLengthMismatch indicates the two aligned strings given to the
	// Vigenère recoverer differ in length after cleaning — a
	// precondition violation, not a search failure.
	ErrLengthMismatch = errors.New("attack: aligned strings differ in length")

	// ErrBadOptions indicates out-of-range solver tuning parameters.
	ErrBadOptions = errors.New("attack: invalid solver options")
)

// LetterFreq is one row of a frequency table.
type LetterFreq struct {
	// Letter is an uppercase cipher letter.
	Letter byte
	// Count is its absolute occurrence count.
	Count int
	// Frequency is Count divided by the total letter count.
	Frequency float64
}

// SubstitutionResult is the best candidate found by CrackSubstitution.
type SubstitutionResult struct {
	// Key is the recovered plain→cipher permutation: Key[i] is the
	// cipher letter for plaintext letter 'A'+i. Directly usable as an
	// mlcc substitution key.
	Key string
	// Plaintext is the ciphertext decoded under Key.
	Plaintext string
	// Score is the fitness of Plaintext (higher is better).
	Score float64
}

// TranspositionResult is the best candidate across all scanned key
// lengths found by CrackTransposition.
type TranspositionResult struct {
	// KeyLen is the winning column count.
	KeyLen int
	// Order is the winning column read order (a permutation of 0..KeyLen-1).
	Order []int
	// Plaintext is the ciphertext decoded under Order.
	Plaintext string
	// Score is the normalized fitness of Plaintext.
	Score float64
}

// VigenereCandidate constrains the Vigenère key for one feasible trial
// length.
type VigenereCandidate struct {
	// KeyLen is the trial key length.
	KeyLen int
	// Shifts[p] lists every shift value 0..25 consistent with all
	// observations mapping to key position p, ascending. Soundness: the
	// true key's shift at p is always present when KeyLen is the true
	// length.
	Shifts [][]int
	// Keys enumerates concrete candidate keys (letters) when the full
	// Cartesian product fits under MaxEnumerate; nil otherwise.
	Keys []string
	// Combinations is the product of per-position candidate counts; the
	// running product stops once it exceeds MaxEnumerate, so a value
	// above the cap means "at least this many".
	Combinations int
}
