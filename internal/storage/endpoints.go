package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetForm fetches form metadata.
func (c *Client) GetForm(ctx context.Context, formID string) (*FormMetadata, error) {
	path := fmt.Sprintf("/forms/%s", url.PathEscape(formID))
	var result FormMetadata
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSubmissions fetches the encrypted submissions of a form, in the
// service's storage order. The order is significant: decrypted responses
// must preserve it.
func (c *Client) ListSubmissions(ctx context.Context, formID string) ([]EncryptedSubmission, error) {
	path := fmt.Sprintf("/forms/%s/submissions", url.PathEscape(formID))
	var result []EncryptedSubmission
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateSubmission stores a pre-encrypted blob for a form and returns the
// new submission id. The storage service enforces one submission per
// submitter; a violation surfaces as [ErrAlreadySubmitted].
func (c *Client) CreateSubmission(ctx context.Context, formID, submitterID, encryptedBlob string) (string, error) {
	req := createSubmissionRequest{
		FormID:        formID,
		SubmitterID:   submitterID,
		EncryptedBlob: encryptedBlob,
	}

	var result createSubmissionResponse
	if err := c.do(ctx, http.MethodPost, "/submissions", req, &result); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("missing submission id in storage response")
	}
	return result.ID, nil
}
