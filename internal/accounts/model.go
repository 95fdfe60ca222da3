package accounts

import "time"

// Account is a registered user. Salt and PasswordHash are lowercase hex.
// Iterations is the effective (already clamped) value used at registration.
// Construction, MemoryKiB, Lanes and KeyLen record the rest of the stretch
// parameters so a login reproduces the hash even after the configuration
// changes. The Argon2id fields are zero for iterated accounts.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Salt         string
	Iterations   int
	Construction string
	MemoryKiB    uint32
	Lanes        uint8
	KeyLen       uint32
	PublicKey    string
	PrivateKey   string
	CreatedAt    time.Time
}

// KeyEntry is a username with the PEM text of its public key.
type KeyEntry struct {
	Username  string `json:"username"`
	PublicKey string `json:"public_key"`
}
