// Package passhash holds the password digest used for credentials.
package passhash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 digest of password. The transform
// is deterministic: login compares stored and computed digests with ==.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
