package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes is the number of random bytes per token. 24 bytes gives 192
// bits of entropy, comfortably past the point of plausible collision.
const tokenBytes = 24

// New returns a cryptographically random, URL-safe invitation token.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
