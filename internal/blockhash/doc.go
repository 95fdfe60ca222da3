// Package blockhash is a from-scratch SHA-256 (FIPS 180-4).
//
// It exists to show every stage of the hash: Pad builds the padded message,
// the block function expands each 64-byte block into a 64-word schedule and
// runs the 64 compression rounds, and the eight state words are serialized
// big-endian into the 32-byte Digest. Output is bit-for-bit identical to
// crypto/sha256.
//
// All functions are pure and safe for concurrent use. A Hash returned by New
// is not.
package blockhash
