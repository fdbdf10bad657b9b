package crypto

import (
	"crypto/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/chacha20poly1305"
)

// Encrypt seals plaintext to the recipient's public key and assembles a
// complete envelope. A fresh ephemeral keypair and nonce are generated per
// call.
//
// Production envelopes are produced by client-side tooling that holds only
// the master public key; this counterpart exists so the round-trip behavior
// of [Decrypt] stays verifiable against the exact same constants.
func Encrypt(recipient *secp256k1.PublicKey, plaintext []byte) ([]byte, error) {
	ephemeral, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}

	key, err := sessionKey(&ephemeral.Key, recipient)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, MinEnvelopeSize+len(plaintext))
	out = append(out, EnvelopeMagic...)
	out = append(out, ephemeral.PubKey().SerializeCompressed()...)
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, nil)...)
	return out, nil
}
