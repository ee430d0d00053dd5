package codec

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"toolbox/go-backend/internal/domains/contracts"
)

var hashers = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
	"sha3-256": func() hash.Hash {
		return sha3.New256()
	},
	"blake2b-256": func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Algorithms lists the supported digests in display order.
func Algorithms() []string {
	return []string{"md5", "sha1", "sha256", "sha512", "sha3-256", "blake2b-256"}
}

// Hash returns the lowercase hex digest of the UTF-8 bytes of text.
func Hash(algorithm, text string) (string, error) {
	newHash, ok := hashers[strings.ToLower(strings.TrimSpace(algorithm))]
	if !ok {
		return "", contracts.InvalidInputf("unsupported hash algorithm %q", algorithm)
	}
	h := newHash()
	_, _ = h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}
