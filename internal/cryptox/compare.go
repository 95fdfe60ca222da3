package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultSaltSize is the salt length used when a caller passes size <= 0.
const DefaultSaltSize = 16

// GenerateSalt returns size random bytes.
func GenerateSalt(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSaltSize
	}
	salt := make([]byte, size)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string (either case).
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ConstantTimeEquals compares two hex-encoded hashes. Lengths are compared
// first; equal-length inputs are compared over their full length by OR-ing
// the XOR of every byte pair. Strings that are not valid hex never compare
// equal.
func ConstantTimeEquals(hexA, hexB string) bool {
	a, err := FromHex(hexA)
	if err != nil {
		return false
	}
	b, err := FromHex(hexB)
	if err != nil {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}
