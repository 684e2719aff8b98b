package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns an opaque, fixed-length key for a user ID or client
// address so raw identities are not kept in in-memory maps.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
