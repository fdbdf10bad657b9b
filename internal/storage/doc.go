// Package storage is the HTTP client for the form storage service, the
// external collaborator that persists forms and encrypted submissions.
//
// The core treats the service as a simple fetch/store API over opaque blobs
// and metadata: it never sees plaintext and never interprets the stored hex
// beyond the validation performed upstream. Every call is a one-shot request
// that either returns a value or a failure; retries, if any, belong to the
// transport layer above, not here.
package storage
