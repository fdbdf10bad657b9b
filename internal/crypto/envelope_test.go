package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// validEnvelope builds a well-formed envelope for structural tests.
func validEnvelope(t *testing.T, plaintext []byte) []byte {
	t.Helper()
	recipient, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	env, err := Encrypt(recipient.PubKey(), plaintext)
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func TestParseEnvelope_Fields(t *testing.T) {
	t.Parallel()
	plaintext := []byte(`{"q1":"yes"}`)
	data := validEnvelope(t, plaintext)

	env, err := ParseEnvelope(data)
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}

	if len(env.Nonce) != NonceSize {
		t.Errorf("nonce length = %d, want %d", len(env.Nonce), NonceSize)
	}
	if want := len(plaintext) + TagSize; len(env.Ciphertext) != want {
		t.Errorf("ciphertext length = %d, want %d", len(env.Ciphertext), want)
	}
	if !bytes.Equal(env.EphemeralKey.SerializeCompressed(), data[MagicSize:MagicSize+CompressedPointSize]) {
		t.Error("ephemeral key does not round-trip to the envelope bytes")
	}
}

func TestParseEnvelope_Rejects(t *testing.T) {
	t.Parallel()
	valid := validEnvelope(t, []byte(`{"q1":"yes"}`))

	badMagic := append([]byte(nil), valid...)
	copy(badMagic, "XX01")

	uncompressedPrefix := append([]byte(nil), valid...)
	uncompressedPrefix[MagicSize] = 0x04

	offCurve := append([]byte(nil), valid...)
	offCurve[MagicSize] = 0x02
	for i := MagicSize + 1; i < MagicSize+CompressedPointSize; i++ {
		offCurve[i] = 0xff
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEnvelopeTooShort},
		{"one short of minimum", valid[:MinEnvelopeSize-1], ErrEnvelopeTooShort},
		{"wrong magic", badMagic, ErrBadMagic},
		{"uncompressed format byte", uncompressedPrefix, ErrInvalidEphemeralKey},
		{"x not below field prime", offCurve, ErrInvalidEphemeralKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseEnvelope() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEnvelope_MinimumSizeConstant(t *testing.T) {
	t.Parallel()
	// The wire format fixes the minimum at 4+33+12+16 bytes.
	if MinEnvelopeSize != 65 {
		t.Errorf("MinEnvelopeSize = %d, want 65", MinEnvelopeSize)
	}

	env := validEnvelope(t, nil)
	if len(env) != MinEnvelopeSize {
		t.Errorf("empty-plaintext envelope is %d bytes, want %d", len(env), MinEnvelopeSize)
	}
	if _, err := ParseEnvelope(env); err != nil {
		t.Errorf("ParseEnvelope(empty-plaintext envelope) error = %v", err)
	}
}
