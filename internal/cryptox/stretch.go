// Package cryptox holds the password side of the project: salt generation,
// password stretching and constant-time comparison of stored hashes.
package cryptox

import (
	"encoding/hex"
	"fmt"

	"github.com/mzmzeee/hashing-showcase/internal/blockhash"
	"github.com/mzmzeee/hashing-showcase/internal/common"
	"golang.org/x/crypto/argon2"
)

// Construction selects how a password is stretched.
type Construction string

const (
	// ConstructionIterated repeats the block hash: h0 = H(password||salt),
	// h(i+1) = H(h(i)). Cheap, not memory-hard.
	ConstructionIterated Construction = "iterated"
	// ConstructionArgon2id runs Argon2id with the iteration count as time cost.
	ConstructionArgon2id Construction = "argon2id"
)

// ParseConstruction maps a configuration value to a Construction. Anything
// other than "iterated" or "argon2id" is common.ErrInvalidArgument.
func ParseConstruction(s string) (Construction, error) {
	switch c := Construction(s); c {
	case ConstructionIterated, ConstructionArgon2id:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown hash construction %q", common.ErrInvalidArgument, s)
	}
}

// StretchParams configures a Stretcher.
type StretchParams struct {
	Construction Construction
	// DefaultIterations replaces a requested count <= 0.
	DefaultIterations int
	// MaxIterations caps the requested count.
	MaxIterations int
	// Argon2id only.
	MemoryKiB uint32
	Lanes     uint8
	KeyLen    uint32
}

// DefaultStretchParams returns the defaults for c. An unknown construction
// gets the argon2id defaults.
func DefaultStretchParams(c Construction) StretchParams {
	if c == ConstructionIterated {
		return StretchParams{
			Construction:      ConstructionIterated,
			DefaultIterations: 10000,
			MaxIterations:     1_000_000,
		}
	}
	return StretchParams{
		Construction:      ConstructionArgon2id,
		DefaultIterations: 3,
		MaxIterations:     10,
		MemoryKiB:         64 * 1024,
		Lanes:             1,
		KeyLen:            32,
	}
}

// Stretcher derives credential hashes. It holds no mutable state and is safe
// for concurrent use.
type Stretcher struct {
	p StretchParams
}

// NewStretcher builds a Stretcher, filling zero fields of p from the
// construction defaults.
func NewStretcher(p StretchParams) *Stretcher {
	d := DefaultStretchParams(p.Construction)
	p.Construction = d.Construction
	if p.DefaultIterations <= 0 {
		p.DefaultIterations = d.DefaultIterations
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = d.MaxIterations
	}
	if p.DefaultIterations > p.MaxIterations {
		p.DefaultIterations = p.MaxIterations
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = d.MemoryKiB
	}
	if p.Lanes == 0 {
		p.Lanes = d.Lanes
	}
	if p.KeyLen == 0 {
		p.KeyLen = d.KeyLen
	}
	return &Stretcher{p: p}
}

// Params returns the effective parameters.
func (s *Stretcher) Params() StretchParams {
	return s.p
}

// EffectiveIterations clamps n into [1, MaxIterations], using
// DefaultIterations for n <= 0.
func (s *Stretcher) EffectiveIterations(n int) int {
	if n <= 0 {
		return s.p.DefaultIterations
	}
	if n > s.p.MaxIterations {
		return s.p.MaxIterations
	}
	return n
}

// Stretch returns the lowercase hex credential hash of password and salt
// after clamping iterations. Identical inputs always give identical output.
func (s *Stretcher) Stretch(password string, salt []byte, iterations int) string {
	n := s.EffectiveIterations(iterations)
	if s.p.Construction == ConstructionIterated {
		return IteratedHash(password, salt, n)
	}
	return Argon2Hash(password, salt, uint32(n), s.p.MemoryKiB, s.p.Lanes, s.p.KeyLen)
}

// IteratedHash hashes password||salt once and then rehashes the digest
// iterations-1 more times. iterations < 1 is treated as 1.
func IteratedHash(password string, salt []byte, iterations int) string {
	combined := make([]byte, 0, len(password)+len(salt))
	combined = append(combined, password...)
	combined = append(combined, salt...)

	h := blockhash.Sum256(combined)
	for i := 1; i < iterations; i++ {
		h = blockhash.Sum256(h[:])
	}

	return hex.EncodeToString(h[:])
}

// Argon2Hash derives keyLen bytes with Argon2id and returns them hex encoded.
func Argon2Hash(password string, salt []byte, timeCost, memoryKiB uint32, lanes uint8, keyLen uint32) string {
	if timeCost == 0 {
		timeCost = 1
	}
	key := argon2.IDKey([]byte(password), salt, timeCost, memoryKiB, lanes, keyLen)
	return hex.EncodeToString(key)
}
