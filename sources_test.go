package formvault

import (
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStaticIdentity(t *testing.T) {
	t.Parallel()

	if id, ok := StaticIdentity("alice.near").VerifiedCaller(context.Background()); !ok || id != "alice.near" {
		t.Errorf("VerifiedCaller() = (%q, %v), want (alice.near, true)", id, ok)
	}
	if _, ok := StaticIdentity("").VerifiedCaller(context.Background()); ok {
		t.Error("empty StaticIdentity reported a verified caller")
	}
}

func TestEnvMasterKeySource_ReadsPerCall(t *testing.T) {
	key1 := mustGenerateKey(t)
	key2 := mustGenerateKey(t)
	source := &EnvMasterKeySource{Var: "FORMVAULT_TEST_MASTER_KEY"}

	t.Setenv("FORMVAULT_TEST_MASTER_KEY", hex.EncodeToString(key1.Serialize()))
	got, err := source.MasterKey(context.Background())
	if err != nil {
		t.Fatalf("MasterKey() error = %v", err)
	}
	if !got.Key.Equals(&key1.Key) {
		t.Error("first read did not return the configured key")
	}

	// The source must pick up a rotated key on the next call.
	t.Setenv("FORMVAULT_TEST_MASTER_KEY", hex.EncodeToString(key2.Serialize()))
	got, err = source.MasterKey(context.Background())
	if err != nil {
		t.Fatalf("MasterKey() after rotation error = %v", err)
	}
	if !got.Key.Equals(&key2.Key) {
		t.Error("second read returned a stale key")
	}
}

func TestEnvMasterKeySource_Missing(t *testing.T) {
	source := &EnvMasterKeySource{Var: "FORMVAULT_TEST_MISSING_KEY"}
	_, err := source.MasterKey(context.Background())
	if !errors.Is(err, ErrMasterKeyUnavailable) {
		t.Errorf("MasterKey() error = %v, want %v", err, ErrMasterKeyUnavailable)
	}
	if !strings.Contains(err.Error(), "FORMVAULT_TEST_MISSING_KEY") {
		t.Errorf("error %q does not name the variable", err)
	}
}

func TestEnvMasterKeySource_DefaultVar(t *testing.T) {
	key := mustGenerateKey(t)
	t.Setenv(DefaultMasterKeyVar, hex.EncodeToString(key.Serialize()))

	source := &EnvMasterKeySource{}
	got, err := source.MasterKey(context.Background())
	if err != nil {
		t.Fatalf("MasterKey() error = %v", err)
	}
	if !got.Key.Equals(&key.Key) {
		t.Error("key read from default variable does not match")
	}
}

func TestEnvMasterKeySource_EnvFile(t *testing.T) {
	key := mustGenerateKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	line := "FORMVAULT_TEST_FILE_KEY=" + hex.EncodeToString(key.Serialize()) + "\n"
	if err := os.WriteFile(envFile, []byte(line), 0o600); err != nil {
		t.Fatal(err)
	}

	source := &EnvMasterKeySource{Var: "FORMVAULT_TEST_FILE_KEY", EnvFile: envFile}
	got, err := source.MasterKey(context.Background())
	if err != nil {
		t.Fatalf("MasterKey() error = %v", err)
	}
	if !got.Key.Equals(&key.Key) {
		t.Error("key loaded from env file does not match")
	}
}

func TestEnvMasterKeySource_EnvFileMissing(t *testing.T) {
	source := &EnvMasterKeySource{
		Var:     "FORMVAULT_TEST_FILE_KEY",
		EnvFile: filepath.Join(t.TempDir(), "nope.env"),
	}
	if _, err := source.MasterKey(context.Background()); err == nil {
		t.Error("expected error for missing env file")
	}
}

func TestParseMasterKey(t *testing.T) {
	t.Parallel()

	valid := mustGenerateKey(t)
	validHex := hex.EncodeToString(valid.Serialize())

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: validHex},
		{name: "valid with whitespace", input: "  " + validHex + "\n"},
		{name: "not hex", input: strings.Repeat("zz", 32), wantErr: true},
		{name: "too short", input: validHex[:62], wantErr: true},
		{name: "too long", input: validHex + "00", wantErr: true},
		{name: "zero scalar", input: strings.Repeat("00", 32), wantErr: true},
		{name: "above curve order", input: strings.Repeat("ff", 32), wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMasterKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseMasterKey() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMasterKey() error = %v", err)
			}
			if !got.Key.Equals(&valid.Key) {
				t.Error("parsed key does not match input")
			}
		})
	}
}
