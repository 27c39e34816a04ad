// Package mlcc - modified Vigenère stage.
//
// This is NOT textbook Vigenère. Two indices drive the key letter:
//
//   - the character position i, advancing by one per character, and
//   - a secondary rotation, advancing by one after every 5th processed
//     character ((i+1)%5 == 0), both reduced mod len(key):
//
//     effective key letter = key[(i + rotation) % len(key)]
//
// The shift is additionally scaled by a per-position modifier
// (i%5)+1 ∈ {1..5}, so the raw shift ranges up to 25*5 = 125 and decrypt
// relies on alphabet.Decode normalizing negative residues.
//
// Contracts:
//   - Input text is cleaned (uppercase letters only).
//   - Encrypt and Decrypt walk the identical index schedule; the pair is
//     an exact inverse for any valid key and any input length.
//
// Complexity: O(n) per call, one output allocation.
package mlcc

import "github.com/katalvlaran/mlcc/alphabet"

// vigenereShiftAt returns shift*modifier for position i under the given
// rotation. Factored out so Encrypt/Decrypt cannot drift apart.
func (k *VigenereKey) vigenereShiftAt(i, rotation int) int {
	effective := k.letters[(i+rotation)%len(k.letters)]
	modifier := i%5 + 1

	return alphabet.Encode(effective) * modifier
}

// Encrypt applies the positionally modulated forward shift.
func (k *VigenereKey) Encrypt(text string) string {
	out := make([]byte, len(text))

	var (
		rotation int
		i        int
	)
	for i = 0; i < len(text); i++ {
		out[i] = alphabet.Decode(alphabet.Encode(text[i]) + k.vigenereShiftAt(i, rotation))
		if (i+1)%5 == 0 {
			rotation = (rotation + 1) % len(k.letters)
		}
	}

	return string(out)
}

// Decrypt applies the inverse shift under the same index schedule.
// alphabet.Decode normalizes the (possibly negative) residue.
func (k *VigenereKey) Decrypt(text string) string {
	out := make([]byte, len(text))

	var (
		rotation int
		i        int
	)
	for i = 0; i < len(text); i++ {
		out[i] = alphabet.Decode(alphabet.Encode(text[i]) - k.vigenereShiftAt(i, rotation))
		if (i+1)%5 == 0 {
			rotation = (rotation + 1) % len(k.letters)
		}
	}

	return string(out)
}
