package crypto

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestDeriveFormKey_Deterministic(t *testing.T) {
	t.Parallel()
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	key1, err := DeriveFormKey(master, "f1")
	if err != nil {
		t.Fatalf("DeriveFormKey() error = %v", err)
	}
	key2, err := DeriveFormKey(master, "f1")
	if err != nil {
		t.Fatalf("DeriveFormKey() error = %v", err)
	}

	if !bytes.Equal(key1.Serialize(), key2.Serialize()) {
		t.Error("DeriveFormKey not deterministic: same inputs produced different scalars")
	}
}

func TestDeriveFormKey_DistinctForms(t *testing.T) {
	t.Parallel()
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	key1, err := DeriveFormKey(master, "f1")
	if err != nil {
		t.Fatal(err)
	}
	key2, err := DeriveFormKey(master, "f2")
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(key1.Serialize(), key2.Serialize()) {
		t.Error("different form ids produced the same form key")
	}
	if bytes.Equal(key1.Serialize(), master.Serialize()) {
		t.Error("derived key equals the master key")
	}
}

func TestDeriveFormKey_EmptyFormID(t *testing.T) {
	t.Parallel()
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := DeriveFormKey(master, ""); err != ErrEmptyFormID {
		t.Errorf("DeriveFormKey(\"\") error = %v, want %v", err, ErrEmptyFormID)
	}
	if _, err := DeriveFormPublicKey(master.PubKey(), ""); err != ErrEmptyFormID {
		t.Errorf("DeriveFormPublicKey(\"\") error = %v, want %v", err, ErrEmptyFormID)
	}
}

func TestDeriveFormPublicKey_MatchesPrivateDerivation(t *testing.T) {
	t.Parallel()
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	formIDs := []string{"f1", "daf14a0c-20f7-4199-a07b-c6456d53ef2d", "form with spaces", "\x00binary\xff"}
	for _, formID := range formIDs {
		formKey, err := DeriveFormKey(master, formID)
		if err != nil {
			t.Fatalf("DeriveFormKey(%q) error = %v", formID, err)
		}
		formPub, err := DeriveFormPublicKey(master.PubKey(), formID)
		if err != nil {
			t.Fatalf("DeriveFormPublicKey(%q) error = %v", formID, err)
		}

		want := formKey.PubKey().SerializeCompressed()
		got := formPub.SerializeCompressed()
		if !bytes.Equal(got, want) {
			t.Errorf("form %q: public derivation = %x, private derivation implies %x", formID, got, want)
		}
	}
}

func TestDeriveFormPublicKey_Deterministic(t *testing.T) {
	t.Parallel()
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	pub1, err := DeriveFormPublicKey(master.PubKey(), "f1")
	if err != nil {
		t.Fatal(err)
	}
	pub2, err := DeriveFormPublicKey(master.PubKey(), "f1")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(pub1.SerializeCompressed(), pub2.SerializeCompressed()) {
		t.Error("DeriveFormPublicKey not deterministic")
	}
}
