package formvault

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/formvault/formvault-go/internal/crypto"
	"github.com/formvault/formvault-go/internal/storage"
)

// DefaultMaxEnvelopeSize caps a submitted envelope at 200 KiB as a
// storage-abuse guard.
const DefaultMaxEnvelopeSize = 200 << 10

// Core executes the supported actions for a single form. Every invocation is
// a synchronous unit of work: derived keys, parsed envelopes and decrypted
// plaintext are invocation-local and discarded on return, so a Core is safe
// for concurrent use.
type Core struct {
	formID          string
	store           *storage.Client
	identity        IdentitySource
	keys            MasterKeySource
	logger          *slog.Logger
	maxEnvelopeSize int

	// deriveKey points at crypto.DeriveFormKey; swappable in tests to
	// observe that unauthorized calls never reach derivation.
	deriveKey func(*secp256k1.PrivateKey, string) (*secp256k1.PrivateKey, error)
}

// coreConfig holds configuration for the core.
type coreConfig struct {
	storageURL      string
	storageSecret   string
	httpClient      *http.Client
	identity        IdentitySource
	keys            MasterKeySource
	logger          *slog.Logger
	maxEnvelopeSize int
}

// Option configures the core.
type Option func(*coreConfig)

// WithStorageURL sets the base URL of the form storage service. Required.
func WithStorageURL(url string) Option {
	return func(c *coreConfig) {
		c.storageURL = url
	}
}

// WithStorageSecret sets the shared secret sent to the storage service.
func WithStorageSecret(secret string) Option {
	return func(c *coreConfig) {
		c.storageSecret = secret
	}
}

// WithHTTPClient sets a custom HTTP client for storage calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *coreConfig) {
		c.httpClient = client
	}
}

// WithIdentitySource sets the verified-caller source. Without one, every
// action that requires authentication fails with ErrNotAuthenticated.
func WithIdentitySource(source IdentitySource) Option {
	return func(c *coreConfig) {
		c.identity = source
	}
}

// WithMasterKeySource sets the master key source.
// Default: &EnvMasterKeySource{}.
func WithMasterKeySource(source MasterKeySource) Option {
	return func(c *coreConfig) {
		c.keys = source
	}
}

// WithLogger sets the logger used for per-record diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *coreConfig) {
		c.logger = logger
	}
}

// WithMaxEnvelopeSize overrides the submitted-envelope size cap in bytes.
func WithMaxEnvelopeSize(size int) Option {
	return func(c *coreConfig) {
		c.maxEnvelopeSize = size
	}
}

// New creates a core bound to one form.
func New(formID string, opts ...Option) (*Core, error) {
	if formID == "" {
		return nil, ErrMissingFormID
	}

	cfg := &coreConfig{
		keys:            &EnvMasterKeySource{},
		logger:          slog.Default(),
		maxEnvelopeSize: DefaultMaxEnvelopeSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var storeOpts []storage.Option
	if cfg.httpClient != nil {
		storeOpts = append(storeOpts, storage.WithHTTPClient(cfg.httpClient))
	}
	store, err := storage.New(cfg.storageURL, cfg.storageSecret, storeOpts...)
	if err != nil {
		return nil, err
	}

	identity := cfg.identity
	if identity == nil {
		identity = StaticIdentity("")
	}

	return &Core{
		formID:          formID,
		store:           store,
		identity:        identity,
		keys:            cfg.keys,
		logger:          cfg.logger,
		maxEnvelopeSize: cfg.maxEnvelopeSize,
		deriveKey:       crypto.DeriveFormKey,
	}, nil
}

// FormID returns the form this core is bound to.
func (c *Core) FormID() string {
	return c.formID
}

// MasterPublicKey returns the hex-encoded compressed master public key. The
// key is not sensitive, so no caller verification is required; client-side
// encryptors use it to derive per-form encryption keys.
func (c *Core) MasterPublicKey(ctx context.Context) (*MasterPublicKeyResult, error) {
	master, err := c.keys.MasterKey(ctx)
	if err != nil {
		return nil, err
	}
	return &MasterPublicKeyResult{
		MasterPublicKey: hex.EncodeToString(master.PubKey().SerializeCompressed()),
	}, nil
}

// authorizeRead admits only the form creator. It runs before any key
// material is read or derived.
func authorizeRead(callerID, creatorID string) error {
	if callerID == "" {
		return ErrNotAuthenticated
	}
	if callerID != creatorID {
		return ErrNotAuthorized
	}
	return nil
}

// Handle routes a parsed request to its handler.
func (c *Core) Handle(ctx context.Context, req Request) (any, error) {
	switch r := req.(type) {
	case ReadResponsesRequest:
		return c.ReadResponses(ctx)
	case SubmitFormRequest:
		return c.SubmitForm(ctx, r.EncryptedAnswers)
	case GetMasterPublicKeyRequest:
		return c.MasterPublicKey(ctx)
	default:
		return nil, &InputError{Message: fmt.Sprintf("unsupported request type %T", req)}
	}
}

// HandleJSON decodes a raw action request, executes it, and encodes the
// outcome. Every failure maps to the {"success":false,"error":...} shape;
// HandleJSON itself never fails.
func (c *Core) HandleJSON(ctx context.Context, data []byte) []byte {
	result, err := c.handleRaw(ctx, data)
	if err != nil {
		out, _ := json.Marshal(ErrorResult{Success: false, Error: err.Error()})
		return out
	}

	out, err := json.Marshal(result)
	if err != nil {
		out, _ = json.Marshal(ErrorResult{Success: false, Error: fmt.Sprintf("encode result: %v", err)})
	}
	return out
}

func (c *Core) handleRaw(ctx context.Context, data []byte) (any, error) {
	req, err := ParseRequest(data)
	if err != nil {
		return nil, err
	}
	return c.Handle(ctx, req)
}
