package mlcc

import "errors"

// ErrInvalidKey is the sentinel wrapped by every KeyError. Use
// errors.Is(err, ErrInvalidKey) to detect any key-validation failure.
var ErrInvalidKey = errors.New("mlcc: invalid key")

// Key kinds reported by KeyError.Kind.
const (
	KindSubstitution  = "substitution"
	KindVigenere      = "vigenere"
	KindTransposition = "transposition"
)

// KeyError reports which key failed validation and why.
// It unwraps to ErrInvalidKey so callers can match either the broad
// sentinel or the concrete kind.
type KeyError struct {
	// Kind is one of KindSubstitution, KindVigenere, KindTransposition.
	Kind string
	// Reason is a short human-readable cause.
	Reason string
}

// Error implements the error interface.
func (e KeyError) Error() string {
	return "mlcc: invalid " + e.Kind + " key: " + e.Reason
}

// Unwrap lets errors.Is(err, ErrInvalidKey) succeed.
func (e KeyError) Unwrap() error { return ErrInvalidKey }
