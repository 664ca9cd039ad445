package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reClaim = regexp.MustCompile(`^CLM-[A-F0-9]{8}$`)
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewClaimNumber_Format(t *testing.T) {
	got := NewClaimNumber()
	if !reClaim.MatchString(got) {
		t.Fatalf("claim number %q does not match CLM-XXXXXXXX", got)
	}
}

func TestNewClaimNumber_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		cn := NewClaimNumber()
		if _, ok := seen[cn]; ok {
			t.Fatalf("duplicate claim number after %d iterations: %q", i, cn)
		}
		seen[cn] = struct{}{}
	}
}
