package formvault

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/joho/godotenv"
)

// IdentitySource reports the externally verified identity of the caller of
// the current invocation. Verification itself (wallet signatures, TEE
// attestation, session auth) happens outside the core; the core consumes a
// single trusted fact: verified caller id, or none.
type IdentitySource interface {
	VerifiedCaller(ctx context.Context) (id string, ok bool)
}

// IdentityFunc adapts a function to IdentitySource.
type IdentityFunc func(ctx context.Context) (string, bool)

// VerifiedCaller implements IdentitySource.
func (f IdentityFunc) VerifiedCaller(ctx context.Context) (string, bool) {
	return f(ctx)
}

// StaticIdentity returns an IdentitySource that always reports id. An empty
// id means no verified caller. Intended for transports that resolve the
// caller before invoking the core, and for tests.
func StaticIdentity(id string) IdentitySource {
	return IdentityFunc(func(context.Context) (string, bool) {
		return id, id != ""
	})
}

// MasterKeySource provides the master private key. Implementations must
// re-acquire the key from the trusted source on every call: the core never
// caches it, so a compromised instance holds key material only for the
// duration of a single invocation.
type MasterKeySource interface {
	MasterKey(ctx context.Context) (*secp256k1.PrivateKey, error)
}

// MasterKeyFunc adapts a function to MasterKeySource.
type MasterKeyFunc func(ctx context.Context) (*secp256k1.PrivateKey, error)

// MasterKey implements MasterKeySource.
func (f MasterKeyFunc) MasterKey(ctx context.Context) (*secp256k1.PrivateKey, error) {
	return f(ctx)
}

// DefaultMasterKeyVar is the environment variable EnvMasterKeySource reads
// when no name is configured.
const DefaultMasterKeyVar = "PROTECTED_MASTER_KEY"

// EnvMasterKeySource reads a hex-encoded master private key from the process
// environment. The variable is read on every call, never memoized.
type EnvMasterKeySource struct {
	// Var is the environment variable name. Empty means DefaultMasterKeyVar.
	Var string
	// EnvFile, when set, is a dotenv file loaded (without overriding
	// variables already present) before each read.
	EnvFile string
}

// MasterKey implements MasterKeySource.
func (s *EnvMasterKeySource) MasterKey(ctx context.Context) (*secp256k1.PrivateKey, error) {
	if s.EnvFile != "" {
		if err := godotenv.Load(s.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", s.EnvFile, err)
		}
	}

	name := s.Var
	if name == "" {
		name = DefaultMasterKeyVar
	}
	hexKey := os.Getenv(name)
	if hexKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrMasterKeyUnavailable, name)
	}
	return ParseMasterKey(hexKey)
}

// ParseMasterKey parses a hex-encoded secp256k1 private key and rejects
// scalars that are zero or not below the curve order.
func ParseMasterKey(hexKey string) (*secp256k1.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("master key is not valid hex: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(raw))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return nil, fmt.Errorf("master key is not below the curve order")
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("master key is zero")
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}
