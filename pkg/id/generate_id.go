package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewClaimNumber returns a human-readable claim number like "CLM-9F2A4C01".
func NewClaimNumber() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "CLM-" + strings.ToUpper(hex.EncodeToString(b))
}
