// Package formvault implements the trusted core of an end-to-end-encrypted
// form service: respondents encrypt answers client-side to a public key tied
// to a form, and only the form's creator can recover plaintext, via a key
// derived on demand from a protected master secret.
//
// The core executes three actions (ReadResponses, SubmitForm and
// GetMasterPublicKey) against an external storage service that persists
// forms and opaque encrypted blobs. Authentication of callers and custody of
// the master key are likewise external: the core consumes a verified caller
// identity and re-reads the master private key from its trusted source on
// every invocation, caching neither.
//
// Basic usage:
//
//	core, err := formvault.New("daf14a0c-20f7-4199-a07b-c6456d53ef2d",
//	    formvault.WithStorageURL("http://db-api.internal"),
//	    formvault.WithStorageSecret(os.Getenv("API_SECRET")),
//	    formvault.WithIdentitySource(identity),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := core.ReadResponses(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range result.Responses {
//	    fmt.Println(r.SubmitterID, string(r.Answers))
//	}
//
// Transports that speak the JSON action protocol can instead hand the raw
// request to [Core.HandleJSON], which never fails: errors come back as
// {"success":false,"error":...}.
package formvault
