package blockhash

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

const (
	// Size is the digest length in bytes.
	Size = 32
	// BlockSize is the block length in bytes.
	BlockSize = 64

	lengthBytes = 8
	maxPadTail  = BlockSize - lengthBytes
)

// Digest is a SHA-256 digest.
type Digest [Size]byte

// Hex returns the lowercase hex encoding of d.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Sum256 returns the SHA-256 digest of data. Any input is valid, the empty
// slice included.
func Sum256(data []byte) [Size]byte {
	padded := Pad(data)

	h := initialState
	for i := 0; i < len(padded); i += BlockSize {
		block(&h, padded[i:i+BlockSize])
	}

	return h.bytes()
}

// Sum is Sum256 returning a Digest.
func Sum(data []byte) Digest {
	return Digest(Sum256(data))
}

// Pad returns data followed by the 0x80 marker, zero bytes and the original
// length in bits as a 64-bit big-endian integer. The result length is a
// multiple of BlockSize; when len(data)%64 >= 56 the trailer spills into an
// extra block.
func Pad(data []byte) []byte {
	n := (len(data)/BlockSize + 1) * BlockSize
	if len(data)%BlockSize >= maxPadTail {
		n += BlockSize
	}

	padded := make([]byte, n)
	copy(padded, data)
	padded[len(data)] = 0x80
	binary.BigEndian.PutUint64(padded[n-lengthBytes:], uint64(len(data))*8)

	return padded
}

// digest is the streaming form. It buffers a partial block and runs the same
// block function as Sum256.
type digest struct {
	h   state
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a hash.Hash computing the same digest as Sum256.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = initialState
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.len += uint64(nn)

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}

	for len(p) >= BlockSize {
		block(&d.h, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

// Sum appends the digest of the data written so far to b. It does not change
// the running state.
func (d *digest) Sum(b []byte) []byte {
	c := *d
	sum := c.finish()
	return append(b, sum[:]...)
}

func (d *digest) finish() [Size]byte {
	tail := Pad(d.x[:d.nx])
	// Pad encoded only the buffered length; overwrite with the total.
	binary.BigEndian.PutUint64(tail[len(tail)-lengthBytes:], d.len*8)

	for i := 0; i < len(tail); i += BlockSize {
		block(&d.h, tail[i:i+BlockSize])
	}

	return d.h.bytes()
}
