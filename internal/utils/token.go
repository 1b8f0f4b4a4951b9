package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes gives 40 hex characters once encoded.
const sessionTokenBytes = 20

// NewSessionToken returns a fresh opaque session token.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
