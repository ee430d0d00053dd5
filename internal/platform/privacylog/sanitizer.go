package privacylog

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

const (
	redactedValue = "[REDACTED]"
	// maxPlainValueRunes caps free-form values such as user text or expressions.
	maxPlainValueRunes = 200
)

var (
	bootNonce = randomNonce()
	// Client identities and fetched URLs are logged only as per-boot fingerprints.
	fingerprintKeys = map[string]struct{}{
		"client_key":  {},
		"remote_addr": {},
		"url":         {},
		"target":      {},
	}
	sensitiveKeyParts = []string{
		"token", "secret", "password", "passphrase", "authorization", "mnemonic",
		"content", "data_url",
	}
)

type SanitizingHandler struct {
	next slog.Handler
}

// WrapHandler sanitizes records before they reach next. Wrapping an already
// sanitizing handler returns it unchanged.
func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	if h, ok := next.(*SanitizingHandler); ok {
		return h
	}
	return &SanitizingHandler{next: next}
}

func (h *SanitizingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SanitizingHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(SanitizeAttr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *SanitizingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SanitizingHandler{next: h.next.WithAttrs(sanitizeAttrs(attrs))}
}

func (h *SanitizingHandler) WithGroup(name string) slog.Handler {
	return &SanitizingHandler{next: h.next.WithGroup(name)}
}

func SanitizeAttr(attr slog.Attr) slog.Attr {
	key := strings.TrimSpace(attr.Key)
	lowerKey := strings.ToLower(key)
	switch {
	case isSensitiveKey(lowerKey):
		return slog.String(key, redactedValue)
	case shouldFingerprintKey(lowerKey):
		return slog.String(fingerprintKeyName(key), Fingerprint(attr.Value.Resolve().String()))
	case attr.Value.Kind() == slog.KindGroup:
		return slog.Attr{Key: key, Value: slog.GroupValue(sanitizeAttrs(attr.Value.Group())...)}
	case attr.Value.Kind() == slog.KindString:
		return slog.String(key, clip(attr.Value.String()))
	}
	return attr
}

func SanitizeArgs(args ...any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			out = append(out, args[i])
			continue
		}
		value := args[i+1]
		i++
		lowerKey := strings.ToLower(strings.TrimSpace(key))
		switch {
		case isSensitiveKey(lowerKey):
			out = append(out, key, redactedValue)
		case shouldFingerprintKey(lowerKey):
			out = append(out, fingerprintKeyName(key), Fingerprint(fmt.Sprint(value)))
		default:
			if s, ok := value.(string); ok {
				value = clip(s)
			}
			out = append(out, key, value)
		}
	}
	return out
}

// Fingerprint returns a stable per-process token for value that cannot be reversed.
func Fingerprint(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(trimmed + "|" + bootNonce))
	return "fp_" + hex.EncodeToString(sum[:8])
}

func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxPlainValueRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxPlainValueRunes]) + fmt.Sprintf("…(%d chars)", len(runes))
}

func sanitizeAttrs(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, SanitizeAttr(attr))
	}
	return out
}

func shouldFingerprintKey(key string) bool {
	_, ok := fingerprintKeys[key]
	return ok
}

func fingerprintKeyName(key string) string {
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(key)), "_fp") {
		return key
	}
	return key + "_fp"
}

func isSensitiveKey(key string) bool {
	for _, part := range sensitiveKeyParts {
		if strings.Contains(key, part) {
			return true
		}
	}
	return false
}

func randomNonce() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "fallback_nonce"
	}
	return hex.EncodeToString(buf)
}
