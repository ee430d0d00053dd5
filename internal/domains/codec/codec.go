// Package codec implements the encode/hash tool: base64, base58 and LZ4
// round trips plus hex digests.
package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	"github.com/pierrec/lz4/v4"

	"toolbox/go-backend/internal/domains/contracts"
)

const (
	ActionEncode = "encode"
	ActionDecode = "decode"
)

// MaxDecompressedBytes caps LZ4 output so a tiny frame cannot expand without bound.
const MaxDecompressedBytes = 16 << 20

func normalizeAction(action string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionEncode, "":
		return ActionEncode, nil
	case ActionDecode:
		return ActionDecode, nil
	default:
		return "", contracts.InvalidInputf("unknown action %q", action)
	}
}

// Base64 encodes text with the standard alphabet or decodes it back to UTF-8 text.
func Base64(action, text string) (string, error) {
	action, err := normalizeAction(action)
	if err != nil {
		return "", err
	}
	if action == ActionEncode {
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	}
	compact := strings.Join(strings.Fields(text), "")
	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(compact, "="))
		if err != nil {
			return "", contracts.InvalidInput("input is not valid base64")
		}
	}
	return decodedText(raw)
}

func Base58(action, text string) (string, error) {
	action, err := normalizeAction(action)
	if err != nil {
		return "", err
	}
	if action == ActionEncode {
		return base58.Encode([]byte(text)), nil
	}
	raw, err := base58.Decode(strings.TrimSpace(text))
	if err != nil {
		return "", contracts.InvalidInput("input is not valid base58")
	}
	return decodedText(raw)
}

// LZ4 compresses text into a base64 LZ4 frame that records the content size,
// or expands such a frame back into text.
func LZ4(action, text string) (string, error) {
	action, err := normalizeAction(action)
	if err != nil {
		return "", err
	}
	if action == ActionEncode {
		frame, err := compressFrame([]byte(text))
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(frame), nil
	}
	frame, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", contracts.InvalidInput("input is not valid base64")
	}
	raw, err := decompressFrame(frame)
	if err != nil {
		return "", err
	}
	return decodedText(raw)
}

func compressFrame(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if err := w.Apply(lz4.SizeOption(uint64(len(data)))); err != nil {
		return nil, fmt.Errorf("lz4 options: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	return buf.Bytes(), nil
}

func decompressFrame(frame []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(frame))
	var out bytes.Buffer
	n, err := io.Copy(&out, io.LimitReader(r, MaxDecompressedBytes+1))
	if err != nil {
		return nil, contracts.InvalidInputf("input is not a valid lz4 frame: %v", err)
	}
	if n > MaxDecompressedBytes {
		return nil, contracts.InvalidInputf("decompressed data exceeds %d bytes", MaxDecompressedBytes)
	}
	return out.Bytes(), nil
}

func decodedText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", contracts.InvalidInput("decoded bytes are not valid UTF-8 text")
	}
	return string(raw), nil
}
