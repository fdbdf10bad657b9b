package crypto

import "golang.org/x/crypto/chacha20poly1305"

const (
	// EnvelopeMagic is the 4-byte ASCII tag that opens every envelope.
	EnvelopeMagic = "EC01"

	// DerivationContext is the domain-separation prefix hashed together with
	// the form id to produce the additive key tweak. Client-side encryptors
	// must use the byte-identical prefix or decryption fails for every
	// submission.
	DerivationContext = "formvault:v1:"

	// ECDHContext is the HKDF info string used when expanding an ECDH shared
	// secret into a symmetric key.
	ECDHContext = "formvault:v1:ecdh"

	// MagicSize is the size of the envelope magic tag in bytes.
	MagicSize = 4
	// CompressedPointSize is the size of a compressed secp256k1 point in bytes.
	CompressedPointSize = 33
	// NonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = chacha20poly1305.Overhead
	// KeySize is the size of the derived symmetric key in bytes.
	KeySize = chacha20poly1305.KeySize

	// MinEnvelopeSize is the smallest structurally valid envelope: magic,
	// ephemeral key, nonce and the tag of an empty ciphertext.
	MinEnvelopeSize = MagicSize + CompressedPointSize + NonceSize + TagSize
)

// AlgsCiphersuite is the canonical string representation of the suite.
var AlgsCiphersuite = "secp256k1-ECDH:HKDF-SHA-256:ChaCha20-Poly1305"
