package formvault

import (
	"errors"
	"fmt"

	"github.com/formvault/formvault-go/internal/storage"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingFormID is returned when a core is constructed without a form id.
	ErrMissingFormID = errors.New("form id is required")

	// ErrInvalidInput is returned when an action payload is malformed.
	ErrInvalidInput = errors.New("invalid action input")

	// ErrNotAuthenticated is returned when an action requires a verified
	// caller identity and none is available.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrNotAuthorized is returned when the verified caller is not the form
	// creator.
	ErrNotAuthorized = errors.New("not authorized to read responses")

	// ErrMasterKeyUnavailable is returned when the master key source has no key.
	ErrMasterKeyUnavailable = errors.New("master key unavailable")

	// ErrDerivationFailed is returned when the form key cannot be derived
	// from the master key.
	ErrDerivationFailed = errors.New("form key derivation failed")

	// ErrEnvelopeInvalid is returned when a submitted envelope fails the
	// structural checks.
	ErrEnvelopeInvalid = errors.New("encrypted envelope is invalid")

	// ErrEnvelopeTooLarge is returned when a submitted envelope exceeds the
	// size cap. Distinct from structural invalidity.
	ErrEnvelopeTooLarge = errors.New("encrypted envelope too large")

	// ErrFormNotFound is returned when the storage service has no such form.
	ErrFormNotFound = errors.New("form not found")

	// ErrAlreadySubmitted is returned when the submitter has already
	// submitted this form. Each account can submit a form only once.
	ErrAlreadySubmitted = errors.New("already submitted: each account can submit a form only once")
)

// FormVaultError is implemented by all typed errors in this package.
type FormVaultError interface {
	error
	FormVaultError() // marker method
}

// InputError reports a malformed action payload: an unknown action tag,
// invalid JSON, or a missing field. Fatal to the invocation.
type InputError struct {
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FormVaultError implements the FormVaultError interface.
func (e *InputError) FormVaultError() {}

// ValidationError reports an envelope rejected by the pre-storage gate.
// Err carries the sentinel that classifies the rejection: ErrEnvelopeInvalid
// for structural failures, ErrEnvelopeTooLarge for the size cap.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// Unwrap returns the classifying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormVaultError implements the FormVaultError interface.
func (e *ValidationError) FormVaultError() {}

// StorageError wraps a failure from the storage collaborator.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// FormVaultError implements the FormVaultError interface.
func (e *StorageError) FormVaultError() {}

// wrapStorageError converts internal storage errors to public errors so that
// errors.Is() checks work with the package sentinels. The duplicate case
// keeps a distinguishable message so clients can tell "already submitted"
// from generic storage failure.
func wrapStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, storage.ErrFormNotFound):
		return &StorageError{Op: op, Err: ErrFormNotFound}
	case errors.Is(err, storage.ErrAlreadySubmitted):
		return &StorageError{Op: op, Err: ErrAlreadySubmitted}
	}
	return &StorageError{Op: op, Err: err}
}
