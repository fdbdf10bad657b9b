package storage

// FormMetadata is the GET /forms/{form_id} response.
type FormMetadata struct {
	// CreatorID is the verified account id of the form's creator.
	CreatorID string `json:"creator_id"`
}

// EncryptedSubmission is one stored submission as returned by the storage
// service. The blob is an opaque hex-encoded envelope and the timestamp is
// passed through verbatim; this client interprets neither.
type EncryptedSubmission struct {
	SubmitterID   string `json:"submitter_id"`
	EncryptedBlob string `json:"encrypted_blob"`
	SubmittedAt   string `json:"submitted_at"`
}

type createSubmissionRequest struct {
	FormID        string `json:"form_id"`
	SubmitterID   string `json:"submitter_id"`
	EncryptedBlob string `json:"encrypted_blob"`
}

type createSubmissionResponse struct {
	ID string `json:"id"`
}
