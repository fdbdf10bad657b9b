// Command formvault runs form actions from the command line. It is meant for
// operating and scripting against a storage service: every subcommand reads
// its input from stdin or the environment and writes JSON to stdout.
//
// Configuration comes from the environment (a .env file in the working
// directory is loaded if present):
//
//	FORMVAULT_FORM_ID         form the action commands operate on
//	FORMVAULT_STORAGE_URL     base URL of the storage service
//	FORMVAULT_STORAGE_SECRET  shared secret for the storage service
//	FORMVAULT_CALLER          verified caller id for action and submit
//	PROTECTED_MASTER_KEY      hex master private key (read per invocation)
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/joho/godotenv"

	formvault "github.com/formvault/formvault-go"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: formvault <keygen|pubkey|encrypt|action>")
	}

	// Missing .env is fine; the environment may already be populated.
	godotenv.Load(".env")

	switch args[0] {
	case "keygen":
		return keygen(stdout)
	case "pubkey":
		return pubkey(stdout)
	case "encrypt":
		return encrypt(stdin, stdout)
	case "action":
		return action(stdin, stdout)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// keygen generates a fresh master keypair.
func keygen(stdout io.Writer) error {
	master, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	return json.NewEncoder(stdout).Encode(map[string]string{
		"master_private_key": hex.EncodeToString(master.Serialize()),
		"master_public_key":  hex.EncodeToString(master.PubKey().SerializeCompressed()),
	})
}

// pubkey prints the public half of the configured master key without
// touching the storage service.
func pubkey(stdout io.Writer) error {
	source := &formvault.EnvMasterKeySource{}
	master, err := source.MasterKey(context.Background())
	if err != nil {
		return err
	}
	return json.NewEncoder(stdout).Encode(map[string]string{
		"master_public_key": hex.EncodeToString(master.PubKey().SerializeCompressed()),
	})
}

// encrypt seals the JSON answers on stdin into a submission envelope. It
// needs only the master public key, taken from FORMVAULT_MASTER_PUBLIC_KEY.
func encrypt(stdin io.Reader, stdout io.Writer) error {
	masterPub := os.Getenv("FORMVAULT_MASTER_PUBLIC_KEY")
	if masterPub == "" {
		return fmt.Errorf("FORMVAULT_MASTER_PUBLIC_KEY is required")
	}
	formID := os.Getenv("FORMVAULT_FORM_ID")
	if formID == "" {
		return fmt.Errorf("FORMVAULT_FORM_ID is required")
	}

	answers, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	envelope, err := formvault.EncryptAnswers(masterPub, formID, answers)
	if err != nil {
		return err
	}
	return json.NewEncoder(stdout).Encode(map[string]string{
		"encrypted_answers": envelope,
	})
}

// action dispatches the JSON action document on stdin against the configured
// form and prints the result. Output is JSON in both outcomes; a dispatch
// failure still exits zero, mirroring the boundary contract.
func action(stdin io.Reader, stdout io.Writer) error {
	core, err := newCore()
	if err != nil {
		return err
	}

	request, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out := core.HandleJSON(ctx, request)
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

func newCore() (*formvault.Core, error) {
	formID := os.Getenv("FORMVAULT_FORM_ID")
	if formID == "" {
		return nil, fmt.Errorf("FORMVAULT_FORM_ID is required")
	}
	storageURL := os.Getenv("FORMVAULT_STORAGE_URL")
	if storageURL == "" {
		return nil, fmt.Errorf("FORMVAULT_STORAGE_URL is required")
	}

	return formvault.New(formID,
		formvault.WithStorageURL(storageURL),
		formvault.WithStorageSecret(os.Getenv("FORMVAULT_STORAGE_SECRET")),
		formvault.WithIdentitySource(formvault.StaticIdentity(os.Getenv("FORMVAULT_CALLER"))),
	)
}
