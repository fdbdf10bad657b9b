package formvault

import (
	"encoding/json"
	"fmt"
)

// Action identifies one of the supported operations.
type Action string

// The closed set of supported actions. Extending the protocol means adding
// a variant here and a case to [ParseRequest] and [Core.Handle]; there is no
// reflective or stringly-typed routing.
const (
	ActionReadResponses      Action = "ReadResponses"
	ActionSubmitForm         Action = "SubmitForm"
	ActionGetMasterPublicKey Action = "GetMasterPublicKey"
)

// Request is implemented by the closed set of action payloads.
type Request interface {
	Action() Action
}

// ReadResponsesRequest asks for all decrypted submissions. Creator only.
type ReadResponsesRequest struct{}

// Action implements Request.
func (ReadResponsesRequest) Action() Action { return ActionReadResponses }

// SubmitFormRequest stores a client-encrypted submission. Any verified caller.
type SubmitFormRequest struct {
	// EncryptedAnswers is the hex-encoded envelope produced by client-side
	// encryption. The core validates it but never decrypts it on this path.
	EncryptedAnswers string `json:"encrypted_answers"`
}

// Action implements Request.
func (SubmitFormRequest) Action() Action { return ActionSubmitForm }

// GetMasterPublicKeyRequest asks for the master public key. Public.
type GetMasterPublicKeyRequest struct{}

// Action implements Request.
func (GetMasterPublicKeyRequest) Action() Action { return ActionGetMasterPublicKey }

// ParseRequest decodes a raw action request, discriminated by its "action"
// tag, into the matching Request variant.
func ParseRequest(data []byte) (Request, error) {
	var tag struct {
		Action Action `json:"action"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, &InputError{Message: "request is not valid JSON", Err: err}
	}

	switch tag.Action {
	case ActionReadResponses:
		return ReadResponsesRequest{}, nil

	case ActionSubmitForm:
		var req SubmitFormRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, &InputError{Message: "invalid SubmitForm payload", Err: err}
		}
		if req.EncryptedAnswers == "" {
			return nil, &InputError{Message: "encrypted_answers is required"}
		}
		return req, nil

	case ActionGetMasterPublicKey:
		return GetMasterPublicKeyRequest{}, nil

	case "":
		return nil, &InputError{Message: "missing action tag"}

	default:
		return nil, &InputError{Message: fmt.Sprintf("unknown action %q", tag.Action)}
	}
}

// Response is a single decrypted submission, in memory only for the duration
// of a ReadResponses invocation.
type Response struct {
	// SubmitterID is the verified account id of the respondent. The storage
	// service keeps it in plaintext; only answers are encrypted.
	SubmitterID string `json:"submitter_id"`
	// Answers is the decrypted answer payload, a JSON value.
	Answers json.RawMessage `json:"answers"`
	// SubmittedAt is the storage service's submission timestamp, passed
	// through verbatim.
	SubmittedAt string `json:"submitted_at"`
}

// ReadResponsesResult is the successful outcome of ReadResponses.
type ReadResponsesResult struct {
	// Responses holds the decrypted submissions in storage order.
	Responses []Response `json:"responses"`
	// SkippedCount is the number of stored submissions that could not be
	// decrypted or parsed. A nonzero value signals data corruption or a key
	// mismatch and is surfaced rather than silently dropped.
	SkippedCount int `json:"skipped_count"`
}

// SubmitFormResult is the successful outcome of SubmitForm.
type SubmitFormResult struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submission_id"`
}

// MasterPublicKeyResult is the successful outcome of GetMasterPublicKey.
type MasterPublicKeyResult struct {
	// MasterPublicKey is the hex-encoded 33-byte compressed master public key.
	MasterPublicKey string `json:"master_public_key"`
}

// ErrorResult is the failure shape every action error maps to at the JSON
// boundary.
type ErrorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
