package signature

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/mzmzeee/hashing-showcase/internal/blockhash"
	"github.com/mzmzeee/hashing-showcase/internal/common"
)

// ModExpFunc computes base^exp mod mod.
type ModExpFunc func(base, exp, mod *big.Int) *big.Int

// ModPow is the default ModExpFunc.
func ModPow(base, exp, mod *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, mod)
}

// Visualizer builds Records. The zero value is not usable; call NewVisualizer.
type Visualizer struct {
	parser PublicKeyParser
	modExp ModExpFunc
}

type Option func(*Visualizer)

// WithParser replaces the PEM parser.
func WithParser(p PublicKeyParser) Option {
	return func(v *Visualizer) { v.parser = p }
}

// WithModExp replaces the modular exponentiation.
func WithModExp(f ModExpFunc) Option {
	return func(v *Visualizer) { v.modExp = f }
}

func NewVisualizer(opts ...Option) *Visualizer {
	v := &Visualizer{parser: PEMParser{}, modExp: ModPow}
	for _, o := range opts {
		o(v)
	}
	return v
}

var defaultVisualizer = NewVisualizer()

// Visualize runs the default Visualizer.
func Visualize(message, signatureBase64, publicKeyPem string) (*Record, error) {
	return defaultVisualizer.Visualize(message, signatureBase64, publicKeyPem)
}

// Visualize recomputes the message digest, decrypts the signature with the
// public key and compares the two.
//
// An empty signature or public key is reported as common.ErrInvalidArgument
// before any work is done. The empty message is valid input and is hashed
// like any other. A signature that is not base64, or a PEM that does not hold
// an RSA public key with a positive modulus and exponent, is reported as
// common.ErrMalformedInput. A digest mismatch is not an error: the Record
// comes back with HashesMatch false.
func (v *Visualizer) Visualize(message, signatureBase64, publicKeyPem string) (*Record, error) {
	switch {
	case signatureBase64 == "":
		return nil, fmt.Errorf("%w: signature is required", common.ErrInvalidArgument)
	case publicKeyPem == "":
		return nil, fmt.Errorf("%w: public key is required", common.ErrInvalidArgument)
	}

	messageHashHex := blockhash.Sum([]byte(message)).Hex()

	sig, err := base64.StdEncoding.DecodeString(strings.TrimSpace(signatureBase64))
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not base64: %v", common.ErrMalformedInput, err)
	}

	key, err := v.parser.ParsePublicKey(publicKeyPem)
	if err != nil {
		return nil, err
	}
	switch {
	case key == nil:
		return nil, fmt.Errorf("%w: no public key parsed", common.ErrMalformedInput)
	case key.Modulus == nil || key.Modulus.Sign() <= 0:
		return nil, fmt.Errorf("%w: public key modulus must be positive", common.ErrMalformedInput)
	case key.Exponent == nil || key.Exponent.Sign() <= 0:
		return nil, fmt.Errorf("%w: public key exponent must be positive", common.ErrMalformedInput)
	}

	decrypted := DecryptBlock(sig, key, v.modExp)
	decryptedHashHex := hex.EncodeToString(TailBytes(decrypted, blockhash.Size))

	return &Record{
		Message:           message,
		MessageHashHex:    messageHashHex,
		SignatureBase64:   signatureBase64,
		DecryptedHashHex:  decryptedHashHex,
		RecomputedHashHex: messageHashHex,
		HashesMatch:       strings.EqualFold(messageHashHex, decryptedHashHex),
	}, nil
}

// DecryptBlock computes sig^E mod N and returns it as a big-endian block of
// exactly key.Size() bytes. big.Int drops leading zero bytes, so the value is
// left-padded back to the key length. A nil modExp means ModPow. The key must
// have a positive modulus and exponent.
func DecryptBlock(sig []byte, key *PublicKey, modExp ModExpFunc) []byte {
	if modExp == nil {
		modExp = ModPow
	}

	s := new(big.Int).SetBytes(sig)
	m := modExp(s, key.Exponent, key.Modulus)
	if m == nil {
		m = new(big.Int)
	}

	size := key.Size()
	out := m.Bytes()
	if len(out) < size {
		padded := make([]byte, size)
		copy(padded[size-len(out):], out)
		out = padded
	}
	return out
}

// TailBytes returns a copy of the last n bytes of b, or a copy of all of b
// when it is shorter than n.
func TailBytes(b []byte, n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	if len(b) <= n {
		return append([]byte(nil), b...)
	}
	return append([]byte(nil), b[len(b)-n:]...)
}
