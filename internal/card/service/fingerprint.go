package service

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the number of hash bytes kept in a fingerprint.
const fingerprintSize = 8

// Fingerprinter derives short keyed digests of card numbers so that log lines can be
// correlated without recording the number itself.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter creates a Fingerprinter. The key may be empty and must not exceed
// 64 bytes.
func NewFingerprinter(key string) (*Fingerprinter, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("fingerprint key must not exceed %d bytes", blake2b.Size)
	}
	return &Fingerprinter{key: []byte(key)}, nil
}

// Fingerprint returns the hex-encoded leading bytes of BLAKE2b-256(key, cleaned number).
func (f *Fingerprinter) Fingerprint(number string) string {
	h, err := blake2b.New256(f.key)
	if err != nil {
		// Key length is checked by NewFingerprinter.
		return ""
	}
	_, _ = h.Write([]byte(CleanNumber(number)))
	return hex.EncodeToString(h.Sum(nil)[:fingerprintSize])
}
