package crypto

import (
	"crypto/sha256"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Decrypt opens an envelope with the form private key.
//
// The decryption process:
//  1. Parse and validate the envelope layout via [ParseEnvelope].
//  2. ECDH: shared point = form_priv * ephemeral_pub.
//  3. HKDF-SHA-256 over the shared point's x-coordinate, no salt,
//     info = [ECDHContext], producing a 32-byte key.
//  4. ChaCha20-Poly1305 Open with the envelope nonce, no associated data.
//
// Decrypt is pure and side-effect-free. Every cryptographic failure after
// parsing collapses to [ErrDecryptionFailed].
func Decrypt(formKey *secp256k1.PrivateKey, data []byte) ([]byte, error) {
	env, err := ParseEnvelope(data)
	if err != nil {
		return nil, err
	}

	key, err := sessionKey(&formKey.Key, env.EphemeralKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// sessionKey computes the ECDH shared point and expands its x-coordinate
// into the symmetric key. Both sides of the exchange call this with their
// own scalar and the peer's point.
func sessionKey(priv *secp256k1.ModNScalar, pub *secp256k1.PublicKey) ([]byte, error) {
	var point, shared secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(priv, &point, &shared)
	shared.ToAffine()
	sharedX := shared.X.Bytes()

	reader := hkdf.New(sha256.New, sharedX[:], nil, []byte(ECDHContext))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	return key, nil
}
