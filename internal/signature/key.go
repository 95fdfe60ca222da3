package signature

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
	"strings"

	"github.com/mzmzeee/hashing-showcase/internal/common"
)

// PublicKey is the (N, E) pair of an RSA public key.
type PublicKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// Size returns the modulus length in bytes.
func (k *PublicKey) Size() int {
	return (k.Modulus.BitLen() + 7) / 8
}

// PublicKeyParser turns PEM text into a PublicKey. Errors wrap
// common.ErrMalformedInput.
type PublicKeyParser interface {
	ParsePublicKey(pemText string) (*PublicKey, error)
}

// PEMParser reads "RSA PUBLIC KEY" (PKCS#1) and "PUBLIC KEY" (PKIX) blocks.
type PEMParser struct{}

func (PEMParser) ParsePublicKey(pemText string) (*PublicKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(pemText)))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", common.ErrMalformedInput)
	}

	var pub *rsa.PublicKey
	switch block.Type {
	case "RSA PUBLIC KEY":
		k, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
		}
		pub = k
	case "PUBLIC KEY":
		k, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
		}
		rk, ok := k.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is %T, not RSA", common.ErrMalformedInput, k)
		}
		pub = rk
	default:
		return nil, fmt.Errorf("%w: unsupported PEM block %q", common.ErrMalformedInput, block.Type)
	}

	return &PublicKey{
		Modulus:  new(big.Int).Set(pub.N),
		Exponent: big.NewInt(int64(pub.E)),
	}, nil
}
