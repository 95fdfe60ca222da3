// Package signing creates RSA key pairs and signs messages. It is the
// counterpart of package signature: messages are digested with blockhash and
// signed with RSASSA-PKCS1-v1_5 labelled SHA-256.
//
// Private keys are plain PEM without a passphrase. That is acceptable only
// for the teaching setup this project targets.
package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/mzmzeee/hashing-showcase/internal/blockhash"
	"github.com/mzmzeee/hashing-showcase/internal/common"
)

// DefaultKeyBits is the modulus size used when GenerateKeyPair gets bits <= 0.
const DefaultKeyBits = 2048

// KeyPair holds both halves of an RSA key in PEM text form.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateKeyPair returns a new RSA key pair encoded as PKCS#1 PEM
// ("RSA PUBLIC KEY" / "RSA PRIVATE KEY").
func GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits <= 0 {
		bits = DefaultKeyBits
	}

	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key: %w", err)
	}

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&priv.PublicKey),
	})
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	return &KeyPair{PublicKey: string(pubPEM), PrivateKey: string(privPEM)}, nil
}

// ParsePrivateKey reads an "RSA PRIVATE KEY" (PKCS#1) or "PRIVATE KEY"
// (PKCS#8) block. Errors wrap common.ErrMalformedInput.
func ParsePrivateKey(pemText string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(pemText)))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", common.ErrMalformedInput)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		k, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
		}
		return k, nil
	case "PRIVATE KEY":
		k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
		}
		rk, ok := k.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is %T, not RSA", common.ErrMalformedInput, k)
		}
		return rk, nil
	}

	return nil, fmt.Errorf("%w: unsupported PEM block %q", common.ErrMalformedInput, block.Type)
}

// Sign digests message with blockhash and signs the digest with the private
// key. The signature is returned as standard base64.
func Sign(privateKeyPem, message string) (string, error) {
	if privateKeyPem == "" {
		return "", fmt.Errorf("%w: private key is required", common.ErrInvalidArgument)
	}

	key, err := ParsePrivateKey(privateKeyPem)
	if err != nil {
		return "", err
	}

	digest := blockhash.Sum256([]byte(message))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}
