package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID v4 string, used for job ids.
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateShortID returns the first 8 hex characters of a UUID, for log
// correlation.
func GenerateShortID() string {
	return uuid.NewString()[:8]
}

// Fingerprint returns the hex SHA-256 of a normalized message, used as
// the cache key so spelling variants of one message share an entry.
func Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
