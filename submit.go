package formvault

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/formvault/formvault-go/internal/crypto"
)

// SubmitForm validates a client-encrypted submission and stores it under the
// verified caller's identity. The envelope is checked structurally only; the
// storage path never decrypts and never sees plaintext.
func (c *Core) SubmitForm(ctx context.Context, encryptedAnswers string) (*SubmitFormResult, error) {
	submitter, ok := c.identity.VerifiedCaller(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	if err := c.validateEnvelopeHex(encryptedAnswers); err != nil {
		return nil, err
	}

	id, err := c.store.CreateSubmission(ctx, c.formID, submitter, encryptedAnswers)
	if err != nil {
		return nil, wrapStorageError("store submission", err)
	}

	return &SubmitFormResult{Success: true, SubmissionID: id}, nil
}

// validateEnvelopeHex is the pure gate ahead of the storage write: hex
// decoding, the size cap, and the envelope codec's structural checks. It
// performs no cryptographic operation and has no side effects.
func (c *Core) validateEnvelopeHex(encryptedAnswers string) error {
	blob, err := hex.DecodeString(encryptedAnswers)
	if err != nil {
		return &ValidationError{
			Reason: fmt.Sprintf("encrypted_answers is not valid hex: %v", err),
			Err:    ErrEnvelopeInvalid,
		}
	}

	if len(blob) > c.maxEnvelopeSize {
		return &ValidationError{
			Reason: fmt.Sprintf("envelope is %d bytes, max %d", len(blob), c.maxEnvelopeSize),
			Err:    ErrEnvelopeTooLarge,
		}
	}

	if _, err := crypto.ParseEnvelope(blob); err != nil {
		return &ValidationError{Reason: err.Error(), Err: ErrEnvelopeInvalid}
	}
	return nil
}
