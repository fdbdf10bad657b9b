package crypto

import "errors"

var (
	// ErrEnvelopeTooShort is returned when an envelope is below the minimum size.
	ErrEnvelopeTooShort = errors.New("envelope too short")

	// ErrBadMagic is returned when the envelope magic tag mismatches.
	ErrBadMagic = errors.New("envelope magic mismatch")

	// ErrInvalidEphemeralKey is returned when the ephemeral key field is not
	// a valid compressed point on the curve.
	ErrInvalidEphemeralKey = errors.New("invalid ephemeral public key")

	// ErrDecryptionFailed is returned for every cryptographic failure during
	// decryption. A wrong key and a tampered ciphertext are intentionally
	// indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidTweak is returned when the hashed derivation tweak is zero or
	// not below the curve order.
	ErrInvalidTweak = errors.New("derivation tweak is not a valid scalar")

	// ErrInvalidDerivedKey is returned when adding the tweak produces an
	// unusable key.
	ErrInvalidDerivedKey = errors.New("derived form key is invalid")

	// ErrEmptyFormID is returned when the derivation input form id is empty.
	ErrEmptyFormID = errors.New("form id is empty")
)
