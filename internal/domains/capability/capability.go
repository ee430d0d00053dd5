// Package capability tracks which optional tool features are switched on.
// A disabled feature makes its tools fail fast with a CapabilityError and is
// listed in the overview banner.
package capability

import (
	"fmt"
	"strings"

	"toolbox/go-backend/internal/domains/contracts"
)

const (
	QRCode  = "qrcode"
	Imaging = "imaging"
	Tables  = "tables"
	Faker   = "faker"
	PDF     = "pdf"
	HTTP    = "http"
)

// All lists every optional feature in banner order.
func All() []string {
	return []string{QRCode, Imaging, Tables, Faker, PDF, HTTP}
}

// Set is immutable after construction and safe for concurrent reads.
type Set struct {
	disabled map[string]bool
}

// NewSet builds a set with every feature on except the listed ones.
func NewSet(disabled []string) (Set, error) {
	known := make(map[string]bool, len(All()))
	for _, f := range All() {
		known[f] = true
	}
	s := Set{disabled: make(map[string]bool, len(disabled))}
	for _, raw := range disabled {
		f := strings.ToLower(strings.TrimSpace(raw))
		if f == "" {
			continue
		}
		if !known[f] {
			return Set{}, fmt.Errorf("unknown feature %q (known: %s)", raw, strings.Join(All(), ", "))
		}
		s.disabled[f] = true
	}
	return s, nil
}

func (s Set) Enabled(feature string) bool {
	return !s.disabled[feature]
}

// Require returns a CapabilityError when feature is disabled.
func (s Set) Require(feature string) error {
	if s.Enabled(feature) {
		return nil
	}
	return &contracts.CapabilityError{Capability: feature}
}

// Missing lists disabled features in banner order.
func (s Set) Missing() []string {
	out := make([]string, 0, len(s.disabled))
	for _, f := range All() {
		if s.disabled[f] {
			out = append(out, f)
		}
	}
	return out
}
