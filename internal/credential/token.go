package credential

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken returns a 64-character hex token from 32 bytes of crypto/rand.
// Tokens are opaque; the door scanner treats them as plain strings.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
