// Package mlcc implements the Multi-Layer Custom Cipher — a classical,
// deliberately breakable three-stage transform — together with exact
// inverses for every stage.
//
// 🚀 What is MLCC?
//
//	A composition of three classical layers applied in fixed order:
//		• Substitution   — monoalphabetic permutation of A..Z
//		• Vigenère       — polyalphabetic shift with a rotating key index
//		  and a per-position multiplier (NOT textbook Vigenère)
//		• Transposition  — zigzag-filled grid read out in key-weight order
//
// Encryption returns the ciphertext plus every intermediate stage string
// (Encryption), which is what the cryptanalysis tools in
// github.com/katalvlaran/mlcc/attack feed on. Decryption inverts the
// stages in reverse order from the ciphertext alone.
//
// ✨ Key properties:
//   - Eager validation: NewCipher checks all three keys up front and
//     fails with a KeyError (wrapping ErrInvalidKey) before any
//     transform runs. No partial transform is ever observable.
//   - Exact inverses: Decrypt(Encrypt(p)) == alphabet.Clean(p) for every
//     valid key triple, including partial-final-row grids, tied
//     transposition weights, and texts shorter than the column count.
//   - Deterministic: no ambient randomness; key generators take an
//     explicit *rand.Rand.
//
// ⚙️ Usage:
//
//	c, err := mlcc.NewCipher("QWERTYUIOPASDFGHJKLZXCVBNM", "LEMONLEMONLE", []int{3, 1, 2})
//	if err != nil {
//	  // errors.Is(err, mlcc.ErrInvalidKey)
//	}
//	enc := c.Encrypt("attack at dawn")
//	plain := c.Decrypt(enc.Ciphertext)
//
// MLCC is a teaching cipher: it is classical and breakable by design,
// and must never be used to protect real data.
package mlcc
