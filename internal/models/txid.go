package models

import (
	"crypto/rand"
	"encoding/hex"
)

// NewTxID returns a fresh random 64-hex-character transaction id.
func NewTxID() string {
	var b [32]byte
	// rand.Read on the system CSPRNG does not fail in practice
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
