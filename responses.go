package formvault

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/formvault/formvault-go/internal/crypto"
	"github.com/formvault/formvault-go/internal/storage"
)

// ReadResponses fetches, decrypts and parses every stored submission of the
// form. Creator only: authorization runs against freshly fetched form
// metadata and short-circuits before the master key is read or the form key
// derived.
//
// Corrupted or undecryptable submissions are skipped and counted, never
// fatal: one malformed record must not deny the creator the rest of the
// responses.
func (c *Core) ReadResponses(ctx context.Context) (*ReadResponsesResult, error) {
	caller, ok := c.identity.VerifiedCaller(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	form, err := c.store.GetForm(ctx, c.formID)
	if err != nil {
		return nil, wrapStorageError("fetch form", err)
	}
	if err := authorizeRead(caller, form.CreatorID); err != nil {
		return nil, err
	}

	master, err := c.keys.MasterKey(ctx)
	if err != nil {
		return nil, err
	}

	submissions, err := c.store.ListSubmissions(ctx, c.formID)
	if err != nil {
		return nil, wrapStorageError("fetch submissions", err)
	}

	formKey, err := c.deriveKey(master, c.formID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}

	responses, skipped := c.decryptAll(formKey, submissions)
	return &ReadResponsesResult{Responses: responses, SkippedCount: skipped}, nil
}

// decryptAll applies decryptRecord to each record independently, folding the
// outcomes into (successes in original order, skip count). No record's
// failure affects any other record.
func (c *Core) decryptAll(formKey *secp256k1.PrivateKey, submissions []storage.EncryptedSubmission) ([]Response, int) {
	responses := make([]Response, 0, len(submissions))
	skipped := 0

	for _, sub := range submissions {
		resp, err := decryptRecord(formKey, sub)
		if err != nil {
			c.logger.Warn("skipping undecryptable submission",
				"form_id", c.formID,
				"submitter_id", sub.SubmitterID,
				"reason", err)
			skipped++
			continue
		}
		responses = append(responses, resp)
	}

	return responses, skipped
}

// decryptRecord decodes, decrypts and parses a single stored submission.
// Pure: same inputs produce the same response or the same failure.
func decryptRecord(formKey *secp256k1.PrivateKey, sub storage.EncryptedSubmission) (Response, error) {
	blob, err := hex.DecodeString(sub.EncryptedBlob)
	if err != nil {
		return Response{}, fmt.Errorf("decode stored blob: %w", err)
	}

	plaintext, err := crypto.Decrypt(formKey, blob)
	if err != nil {
		return Response{}, err
	}

	if !json.Valid(plaintext) {
		return Response{}, errors.New("decrypted answers are not valid JSON")
	}

	return Response{
		SubmitterID: sub.SubmitterID,
		Answers:     json.RawMessage(plaintext),
		SubmittedAt: sub.SubmittedAt,
	}, nil
}
