package random

import (
	"crypto/rand"
	"encoding/hex"
)

// NewHexString returns size random bytes hex-encoded, used for
// storage-assigned file names.
func NewHexString(size int) string {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}
