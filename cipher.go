// Package mlcc - pipeline composition.
//
// Composition order is fixed: substitution → Vigenère → transposition on
// encrypt, reversed on decrypt. NewCipher validates all three keys
// before any transform can run; Encrypt/Decrypt themselves cannot fail.
package mlcc

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/mlcc/alphabet"
)

// Cipher is an immutable, validated MLCC key triple.
type Cipher struct {
	sub   *SubstitutionKey
	vig   *VigenereKey
	trans *TranspositionKey
	log   *slog.Logger
}

// Option configures a Cipher at construction time.
type Option func(*Cipher)

// WithLogger routes the constructor's diagnostic record through the
// given structured logger. Diagnostics are not part of the functional
// contract; the default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cipher) {
		if l != nil {
			c.log = l
		}
	}
}

// Encryption holds the ciphertext together with every intermediate
// stage artifact. The intermediates are diagnostic / attack-feeding
// only; Decrypt never needs them.
type Encryption struct {
	// Ciphertext is the final three-stage output.
	Ciphertext string
	// Substituted is the text after the substitution stage.
	Substituted string
	// VigenereResult is the text after the Vigenère stage.
	VigenereResult string
	// Grid is the filled transposition grid; zero bytes mark empty cells
	// of the partial final row.
	Grid [][]byte
	// ColumnOrder is the resolved column read order.
	ColumnOrder []int
}

// NewCipher validates the three keys and builds a pipeline instance.
//
// Errors: KeyError for the first malformed key (errors.Is(err,
// ErrInvalidKey) matches all of them); no transform runs on failure.
func NewCipher(substitutionKey, vigenereKey string, transpositionKey []int, opts ...Option) (*Cipher, error) {
	sub, err := NewSubstitutionKey(substitutionKey)
	if err != nil {
		return nil, err
	}
	vig, err := NewVigenereKey(vigenereKey)
	if err != nil {
		return nil, err
	}
	trans, err := NewTranspositionKey(transpositionKey)
	if err != nil {
		return nil, err
	}

	c := &Cipher{
		sub:   sub,
		vig:   vig,
		trans: trans,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	var opt Option
	for _, opt = range opts {
		opt(c)
	}

	c.log.Debug("mlcc cipher constructed",
		slog.Int("vigenere_len", vig.Len()),
		slog.Int("columns", trans.Columns()),
	)

	return c, nil
}

// Encrypt cleans plaintext and runs the three stages, returning the
// ciphertext and all intermediates.
//
// Complexity: O(n) over the cleaned length (grid allocation included).
func (c *Cipher) Encrypt(plaintext string) Encryption {
	cleaned := alphabet.Clean(plaintext)
	substituted := c.sub.Encrypt(cleaned)
	vigenereResult := c.vig.Encrypt(substituted)
	ciphertext, grid := transposeEncrypt(vigenereResult, c.trans)

	return Encryption{
		Ciphertext:     ciphertext,
		Substituted:    substituted,
		VigenereResult: vigenereResult,
		Grid:           grid,
		ColumnOrder:    c.trans.ColumnOrder(),
	}
}

// Decrypt cleans ciphertext and runs the three stages in reverse order:
// Decrypt(Encrypt(p).Ciphertext) == alphabet.Clean(p).
//
// Complexity: O(n).
func (c *Cipher) Decrypt(ciphertext string) string {
	cleaned := alphabet.Clean(ciphertext)
	vigenereResult := c.trans.Decrypt(cleaned)
	substituted := c.vig.Decrypt(vigenereResult)

	return c.sub.Decrypt(substituted)
}
