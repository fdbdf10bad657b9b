package formvault

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/formvault/formvault-go/internal/crypto"
)

// EncryptAnswers performs the respondent side of the protocol: it derives the
// form's public key from the hex-encoded compressed master public key and
// seals the JSON answers into a hex-encoded envelope suitable for SubmitForm.
//
// This runs entirely on public material. Respondents never see the master
// private key or the form private key.
func EncryptAnswers(masterPublicKeyHex, formID string, answers []byte) (string, error) {
	raw, err := hex.DecodeString(masterPublicKeyHex)
	if err != nil {
		return "", &InputError{Message: "master public key is not valid hex", Err: err}
	}
	masterPub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return "", &InputError{Message: "master public key is not a valid point", Err: err}
	}

	formPub, err := crypto.DeriveFormPublicKey(masterPub, formID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}

	envelope, err := crypto.Encrypt(formPub, answers)
	if err != nil {
		return "", fmt.Errorf("encrypt answers: %w", err)
	}
	return hex.EncodeToString(envelope), nil
}
