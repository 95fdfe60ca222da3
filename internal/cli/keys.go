package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/filex"
	"github.com/mzmzeee/hashing-showcase/internal/signing"
)

// keygen prints a new key pair, or writes it to --out as <name>.pem and
// <name>.pub.pem.
func (a *App) keygen(ctx context.Context, args []string) error {
	fs := a.flagSet("keygen")
	bits := fs.Int("bits", 0, "modulus size in bits (0: configured value)")
	out := fs.String("out", "", "directory to write the key files to (stdout when empty)")
	name := fs.String("name", "key", "base name of the key files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n := *bits
	if n == 0 {
		n = a.config.KeyBits
	}

	kp, err := signing.GenerateKeyPair(n)
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Fprint(a.out, kp.PublicKey)
		fmt.Fprint(a.out, kp.PrivateKey)
		return nil
	}

	pub, priv, err := filex.WriteKeyPair(*out, *name, kp.PublicKey, kp.PrivateKey)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "key pair written", "public", pub, "private", priv)
	fmt.Fprintf(a.out, "public key:  %s\nprivate key: %s\n", pub, priv)
	return nil
}

// sign prints the base64 signature of --message made with a key file or with
// the key of an account (which asks for its password). An explicitly empty
// message is signed like any other.
func (a *App) sign(ctx context.Context, args []string) error {
	fs := a.flagSet("sign")
	message := fs.String("message", "", "message to sign")
	keyFile := fs.String("key", "", "private key PEM file")
	user := fs.String("user", "", "sign with this account's key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("message") {
		return usageError("--message is required")
	}

	var privatePEM string
	switch {
	case *keyFile != "" && *user != "":
		return usageError("use either --key or --user")
	case *keyFile != "":
		b, err := os.ReadFile(*keyFile)
		if err != nil {
			return err
		}
		privatePEM = string(b)
	case *user != "":
		account, err := a.authenticate(ctx, *user)
		if err != nil {
			return err
		}
		privatePEM = account.PrivateKey
	default:
		return usageError("--key or --user is required")
	}

	sig, err := signing.Sign(privatePEM, *message)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sig)
	return nil
}

// visualize prints the verification record of a message and signature as
// indented JSON. A mismatch is reported in the record, not as an error.
func (a *App) visualize(ctx context.Context, args []string) error {
	fs := a.flagSet("visualize")
	message := fs.String("message", "", "message that was signed")
	sig := fs.String("signature", "", "base64 signature")
	keyFile := fs.String("key", "", "public key PEM file")
	user := fs.String("user", "", "verify with this account's public key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("message") {
		return usageError("--message is required")
	}

	var publicPEM string
	switch {
	case *keyFile != "" && *user != "":
		return usageError("use either --key or --user")
	case *keyFile != "":
		b, err := os.ReadFile(*keyFile)
		if err != nil {
			return err
		}
		publicPEM = string(b)
	case *user != "":
		k, err := a.publicKey(ctx, *user)
		if err != nil {
			return err
		}
		publicPEM = k
	}

	rec, err := a.visualizer.Visualize(*message, *sig, publicPEM)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "signature visualized", "hashes_match", rec.HashesMatch)

	return a.printJSON(rec)
}

// keys prints every account's public key as JSON.
func (a *App) keys(ctx context.Context, args []string) error {
	fs := a.flagSet("keys")
	if err := fs.Parse(args); err != nil {
		return err
	}

	keys, err := a.accounts.PublicKeys(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(keys)
}

func (a *App) publicKey(ctx context.Context, username string) (string, error) {
	keys, err := a.accounts.PublicKeys(ctx)
	if err != nil {
		return "", err
	}
	for _, k := range keys {
		if k.Username == username {
			return k.PublicKey, nil
		}
	}
	return "", fmt.Errorf("account %q: %w", username, common.ErrorNotFound)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
