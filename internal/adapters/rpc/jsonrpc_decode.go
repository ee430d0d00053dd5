package rpc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

var errInvalidParams = errors.New("invalid params")

// decodeParams decodes a params object into dst. Absent or null params read
// as {}; positional arrays, unknown fields and trailing data are rejected.
func decodeParams(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}
	if trimmed[0] != '{' {
		return errInvalidParams
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidParams
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errInvalidParams
	}
	return nil
}

// decodeContent reads an uploaded file sent as base64, with or without padding.
func decodeContent(encoded string) ([]byte, error) {
	compact := strings.Join(strings.Fields(encoded), "")
	if data, err := base64.StdEncoding.DecodeString(compact); err == nil {
		return data, nil
	}
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(compact, "="))
	if err != nil {
		return nil, errInvalidParams
	}
	return data, nil
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
