// Package signature replays RSA signature verification one step at a time so
// each intermediate value can be shown.
//
// For RSASSA-PKCS1-v1_5 the verifier raises the signature to the public
// exponent modulo N and compares the result with the encoded digest of the
// message. Visualize performs that public operation by hand with math/big,
// left-pads the result to the key length and reads the last 32 bytes of the
// block as the embedded digest. The PKCS#1 padding and DigestInfo prefix are
// not validated: the record answers "does the digest inside the signature
// equal the digest of the message", which is what the animation displays.
//
// Everything here is a pure function of its arguments.
package signature
