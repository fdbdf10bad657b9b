package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// deriveTweak hashes the derivation context and form id into a nonzero
// scalar below the curve order. The out-of-range cases are cryptographically
// negligible but checked rather than assumed.
func deriveTweak(formID string) (*secp256k1.ModNScalar, error) {
	if formID == "" {
		return nil, ErrEmptyFormID
	}

	h := sha256.New()
	h.Write([]byte(DerivationContext))
	h.Write([]byte(formID))
	digest := h.Sum(nil)

	tweak := new(secp256k1.ModNScalar)
	if overflow := tweak.SetByteSlice(digest); overflow {
		return nil, ErrInvalidTweak
	}
	if tweak.IsZero() {
		return nil, ErrInvalidTweak
	}
	return tweak, nil
}

// DeriveFormKey derives the form-specific private key from the master
// private key:
//
//	form_priv = master_priv + SHA-256(DerivationContext || form_id) mod N
//
// The derivation is a pure function of its inputs; identical inputs always
// yield the identical scalar.
func DeriveFormKey(master *secp256k1.PrivateKey, formID string) (*secp256k1.PrivateKey, error) {
	tweak, err := deriveTweak(formID)
	if err != nil {
		return nil, err
	}

	formKey := new(secp256k1.ModNScalar).Set(&master.Key)
	formKey.Add(tweak)
	if formKey.IsZero() {
		return nil, ErrInvalidDerivedKey
	}
	return secp256k1.NewPrivateKey(formKey), nil
}

// DeriveFormPublicKey derives the form-specific public key from the master
// public key alone:
//
//	form_pub = master_pub + tweak*G
//
// It uses the same context string and hash as [DeriveFormKey], so any party
// holding only the master public key computes the point matching the
// creator's derived private key.
func DeriveFormPublicKey(masterPub *secp256k1.PublicKey, formID string) (*secp256k1.PublicKey, error) {
	tweak, err := deriveTweak(formID)
	if err != nil {
		return nil, err
	}

	var tweakPoint, masterPoint, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(tweak, &tweakPoint)
	masterPub.AsJacobian(&masterPoint)
	secp256k1.AddNonConst(&tweakPoint, &masterPoint, &sum)

	// The sum is the point at infinity only when tweak*G == -master_pub.
	if sum.Z.Normalize().IsZero() {
		return nil, ErrInvalidDerivedKey
	}
	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y), nil
}
