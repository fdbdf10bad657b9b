package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Envelope is a parsed submission envelope. It only references fields of the
// input byte sequence; the envelope itself is immutable once produced and
// this package never constructs one except through [Encrypt].
type Envelope struct {
	// EphemeralKey is the sender's ephemeral public key, validated to be a
	// point on the curve.
	EphemeralKey *secp256k1.PublicKey
	// Nonce is the 12-byte AEAD nonce.
	Nonce []byte
	// Ciphertext is the AEAD ciphertext with the 16-byte tag appended.
	Ciphertext []byte
}

// ParseEnvelope validates the fixed binary layout and exposes its fields.
// It checks the total length, the magic tag, and that the ephemeral key
// field decodes to a valid compressed point satisfying the curve equation.
// No cryptographic operation runs here, so it is safe on untrusted input.
func ParseEnvelope(data []byte) (*Envelope, error) {
	if len(data) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeTooShort, len(data), MinEnvelopeSize)
	}
	if string(data[:MagicSize]) != EnvelopeMagic {
		return nil, fmt.Errorf("%w: want %q", ErrBadMagic, EnvelopeMagic)
	}

	keyEnd := MagicSize + CompressedPointSize
	ephemeralKey, err := secp256k1.ParsePubKey(data[MagicSize:keyEnd])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEphemeralKey, err)
	}

	nonceEnd := keyEnd + NonceSize
	return &Envelope{
		EphemeralKey: ephemeralKey,
		Nonce:        data[keyEnd:nonceEnd],
		Ciphertext:   data[nonceEnd:],
	}, nil
}
