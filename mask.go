package gpm

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// MaskType represents a masking rule for audit output.
type MaskType string

const (
	MaskSecret     MaskType = "secret"     // master key -> ********
	MaskIdentifier MaskType = "identifier" // apehex -> a*****
)

// validMaskTypes contains all valid mask types for tag validation.
var validMaskTypes = map[MaskType]bool{
	MaskSecret:     true,
	MaskIdentifier: true,
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}

// Masker applies masking to a sensitive value before display.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// secretMasker hides a value entirely.
type secretMasker struct{}

// SecretMasker returns a masker for secrets.
// The output is a fixed-width placeholder carrying no information about the
// value, not even its length.
func SecretMasker() Masker {
	return &secretMasker{}
}

func (m *secretMasker) Mask(value string) string {
	if value == "" {
		return ""
	}
	return "********"
}

// identifierMasker masks identifiers: apehex -> a*****
type identifierMasker struct{}

// IdentifierMasker returns a masker for login identifiers.
// Preserves the first character, masks the rest.
func IdentifierMasker() Masker {
	return &identifierMasker{}
}

func (m *identifierMasker) Mask(value string) string {
	runes := []rune(value)
	if len(runes) < 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// Fingerprint returns a short public identifier for a master key.
//
// The fingerprint is the first four bytes of the BLAKE2b-256 digest of the
// key, hex encoded. It names a key in events and audit output without
// revealing it and plays no part in the derivation itself.
func Fingerprint(masterKey string) string {
	sum := blake2b.Sum256([]byte(masterKey))
	return hex.EncodeToString(sum[:4])
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskSecret:     SecretMasker(),
		MaskIdentifier: IdentifierMasker(),
	}
}
