// Package randgen produces passwords, UUIDs, tokens, random strings and
// BIP-39 mnemonics. All randomness comes from crypto/rand unless a test
// swaps the reader.
package randgen

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"math/big"

	"github.com/google/uuid"
	"github.com/tyler-smith/go-bip39"

	"toolbox/go-backend/internal/domains/contracts"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()"

	DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

const (
	MinPasswordLength     = 6
	MaxPasswordLength     = 128
	DefaultPasswordLength = 16

	MinTokenBytes     = 8
	MaxTokenBytes     = 256
	DefaultTokenBytes = 32

	MinStringLength     = 1
	MaxStringLength     = 500
	DefaultStringLength = 12

	DefaultMnemonicBits = 128
)

type PasswordOptions struct {
	Length    int
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordOptions mirrors the dashboard defaults: every class enabled.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: DefaultPasswordLength, Uppercase: true, Digits: true, Symbols: true}
}

// PasswordPool returns the characters a password with opts may contain.
func PasswordPool(opts PasswordOptions) string {
	pool := lowercase
	if opts.Uppercase {
		pool += uppercase
	}
	if opts.Digits {
		pool += digits
	}
	if opts.Symbols {
		pool += symbols
	}
	return pool
}

type Generator struct {
	reader io.Reader
}

func New() *Generator {
	return &Generator{reader: rand.Reader}
}

func newWithReader(r io.Reader) *Generator {
	return &Generator{reader: r}
}

func (g *Generator) Password(opts PasswordOptions) (string, error) {
	if opts.Length < MinPasswordLength || opts.Length > MaxPasswordLength {
		return "", contracts.InvalidInputf("password length must be between %d and %d", MinPasswordLength, MaxPasswordLength)
	}
	return g.pick([]rune(PasswordPool(opts)), opts.Length)
}

func (g *Generator) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Token returns n random bytes as URL-safe base64 without padding.
func (g *Generator) Token(n int) (string, error) {
	if n < MinTokenBytes || n > MaxTokenBytes {
		return "", contracts.InvalidInputf("token size must be between %d and %d bytes", MinTokenBytes, MaxTokenBytes)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// String draws length runes from charset.
func (g *Generator) String(length int, charset string) (string, error) {
	if length < MinStringLength || length > MaxStringLength {
		return "", contracts.InvalidInputf("length must be between %d and %d", MinStringLength, MaxStringLength)
	}
	runes := []rune(charset)
	if len(runes) == 0 {
		return "", contracts.InvalidInput("charset must not be empty")
	}
	return g.pick(runes, length)
}

// Mnemonic returns a BIP-39 phrase for 128 (12 words) or 256 (24 words) bits of entropy.
func (g *Generator) Mnemonic(bits int) (string, error) {
	if bits != 128 && bits != 256 {
		return "", contracts.InvalidInput("mnemonic entropy must be 128 or 256 bits")
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(g.reader, entropy); err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func ValidMnemonic(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}

func (g *Generator) pick(pool []rune, n int) (string, error) {
	limit := big.NewInt(int64(len(pool)))
	out := make([]rune, n)
	for i := range out {
		idx, err := rand.Int(g.reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = pool[idx.Int64()]
	}
	return string(out), nil
}
