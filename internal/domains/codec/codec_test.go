package codec

import (
	"errors"
	"strings"
	"testing"

	"toolbox/go-backend/internal/domains/contracts"
)

func TestBase64_RoundTrip(t *testing.T) {
	encoded, err := Base64(ActionEncode, "héllo wörld")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != "aMOpbGxvIHfDtnJsZA==" {
		t.Fatalf("unexpected encoding %q", encoded)
	}
	decoded, err := Base64(ActionDecode, encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "héllo wörld" {
		t.Fatalf("unexpected decoding %q", decoded)
	}
}

func TestBase64_DecodeAcceptsMissingPaddingAndWhitespace(t *testing.T) {
	got, err := Base64(ActionDecode, " aGVs\nbG8 ")
	if err != nil || got != "hello" {
		t.Fatalf("expected hello, got %q err=%v", got, err)
	}
	got, err = Base64(ActionDecode, "aGk")
	if err != nil || got != "hi" {
		t.Fatalf("expected hi, got %q err=%v", got, err)
	}
}

func TestBase64_DecodeErrorsAreInvalidInput(t *testing.T) {
	for _, in := range []string{"!!!", "/w=="} {
		if _, err := Base64(ActionDecode, in); !errors.Is(err, contracts.ErrInvalidInput) {
			t.Fatalf("decode %q: expected invalid input, got %v", in, err)
		}
	}
	if _, err := Base64("rot13", "x"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown action, got %v", err)
	}
}

func TestBase58_RoundTrip(t *testing.T) {
	encoded, err := Base58(ActionEncode, "hello world")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != "StV1DL6CwTryKyV" {
		t.Fatalf("unexpected encoding %q", encoded)
	}
	decoded, err := Base58(ActionDecode, encoded)
	if err != nil || decoded != "hello world" {
		t.Fatalf("decode: %q err=%v", decoded, err)
	}
	if _, err := Base58(ActionDecode, "0OIl"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLZ4_RoundTrip(t *testing.T) {
	text := strings.Repeat("toolbox ", 512)
	compressed, err := LZ4(ActionEncode, text)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if len(compressed) >= len(text) {
		t.Fatalf("expected repetitive text to shrink, got %d >= %d", len(compressed), len(text))
	}
	restored, err := LZ4(ActionDecode, compressed)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if restored != text {
		t.Fatal("round trip mismatch")
	}
}

func TestLZ4_RejectsGarbage(t *testing.T) {
	if _, err := LZ4(ActionDecode, "bm90IGFuIGx6NCBmcmFtZQ=="); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestHash_KnownDigests(t *testing.T) {
	cases := map[string]string{
		"md5":      "900150983cd24fb0d6963f7d28e17f72",
		"sha1":     "a9993e364706816aba3e25717850c26c9cd0d89d",
		"sha256":   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"SHA3-256": "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	}
	for algo, want := range cases {
		got, err := Hash(algo, "abc")
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if got != want {
			t.Fatalf("%s(abc) = %s, want %s", algo, got, want)
		}
	}
}

func TestHash_DigestLengths(t *testing.T) {
	lengths := map[string]int{"sha512": 128, "blake2b-256": 64}
	for algo, want := range lengths {
		got, err := Hash(algo, "abc")
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if len(got) != want {
			t.Fatalf("%s digest length = %d, want %d", algo, len(got), want)
		}
	}
	for _, algo := range Algorithms() {
		if _, err := Hash(algo, ""); err != nil {
			t.Fatalf("listed algorithm %s failed: %v", algo, err)
		}
	}
}

func TestHash_UnknownAlgorithm(t *testing.T) {
	if _, err := Hash("crc32", "abc"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
