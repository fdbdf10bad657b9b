// Package crypto implements the FormVault encryption scheme: deterministic
// per-form key derivation on secp256k1 and the ECDH envelope format used for
// encrypted form submissions.
//
// # Algorithm Suite
//
//   - secp256k1 ECDH: shared-secret computation between a form private key
//     and the ephemeral public key carried in each envelope.
//
//   - Additive tweak derivation: a form private key is the master private
//     key plus SHA-256(context || form id) mod the curve order. The matching
//     public derivation adds the tweak's curve-point multiple to the master
//     public key, so client-side encryptors that only hold the master public
//     key can compute the per-form encryption key independently.
//
//   - HKDF-SHA-256 (RFC 5869): expands the shared point's x-coordinate into
//     a 256-bit symmetric key with a fixed domain-separation info string.
//
//   - ChaCha20-Poly1305: authenticated encryption of the submission payload.
//     Tampering with any envelope byte causes decryption to fail.
//
// # Envelope Format
//
// An envelope is a fixed binary layout:
//
//	magic (4 bytes, "EC01") ||
//	ephemeral public key (33 bytes, compressed point) ||
//	nonce (12 bytes) ||
//	ciphertext + Poly1305 tag (16 bytes)
//
// The minimum envelope size is therefore 65 bytes. [ParseEnvelope] performs
// the structural checks only and never touches key material, so it is safe
// to run on untrusted input before storage.
//
// # Security Notes
//
// [Decrypt] deliberately reports every cryptographic failure as the single
// opaque [ErrDecryptionFailed]: a caller cannot distinguish a wrong key from
// a tampered ciphertext, which avoids leaking a decryption oracle.
//
// Derivation is a pure function of (master key, form id). The same inputs
// always produce the same form key, across processes and over time, which is
// what keeps envelopes encrypted days apart decryptable. Changing
// [DerivationContext] or [ECDHContext] silently breaks decryption for every
// stored submission.
package crypto
