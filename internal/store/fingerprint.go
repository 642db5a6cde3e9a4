package store

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Fingerprint returns a short hex digest of v's YAML form.
//
// It hashes with BLAKE2b and truncates to 16 bytes (32 hex chars), so equal
// objects always map to the same directory name.
func Fingerprint(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	h, err := blake2b.New(16, nil)
	if err != nil {
		return "", err
	}
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil)), nil
}
