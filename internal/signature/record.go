package signature

const (
	StatusValid   = "Valid"
	StatusInvalid = "Invalid"
)

// Record is the derived, never-stored result of one visualization. Field
// names in JSON are the ones the rendering service expects.
type Record struct {
	Message           string `json:"message"`
	MessageHashHex    string `json:"message_hash_hex"`
	SignatureBase64   string `json:"signature_base64"`
	DecryptedHashHex  string `json:"decrypted_hash_hex"`
	RecomputedHashHex string `json:"recomputed_hash_hex"`
	HashesMatch       bool   `json:"hashes_match"`
}

// Status maps HashesMatch to the label shown next to a message.
func (r Record) Status() string {
	if r.HashesMatch {
		return StatusValid
	}
	return StatusInvalid
}
