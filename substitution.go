// Package mlcc - monoalphabetic substitution stage.
//
// Contracts:
//   - Input text is cleaned (uppercase letters only); callers go through
//     alphabet.Clean or receive output of a previous stage.
//   - Both directions are table lookups; the inverse table was built in
//     NewSubstitutionKey, so Decrypt never searches.
//
// Complexity: O(n) per call, one output allocation.
package mlcc

import "github.com/katalvlaran/mlcc/alphabet"

// Encrypt maps each plaintext letter through the plain→cipher permutation.
func (k *SubstitutionKey) Encrypt(text string) string {
	out := make([]byte, len(text))

	var i int
	for i = 0; i < len(text); i++ {
		out[i] = k.letters[alphabet.Encode(text[i])]
	}

	return string(out)
}

// Decrypt maps each cipher letter back through the precomputed inverse
// table: Decrypt(Encrypt(p)) == p for every letter of every valid key.
func (k *SubstitutionKey) Decrypt(text string) string {
	out := make([]byte, len(text))

	var i int
	for i = 0; i < len(text); i++ {
		out[i] = k.inverse[alphabet.Encode(text[i])]
	}

	return string(out)
}
