// Package fakedata generates rows of plausible personal data for fixtures.
package fakedata

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	MinRows     = 1
	MaxRows     = 200
	DefaultRows = 5
)

var fieldGenerators = map[string]func(f *gofakeit.Faker) string{
	"name":    func(f *gofakeit.Faker) string { return f.Name() },
	"email":   func(f *gofakeit.Faker) string { return f.Email() },
	"address": func(f *gofakeit.Faker) string { return f.Address().Address },
	"phone":   func(f *gofakeit.Faker) string { return f.Phone() },
}

// Fields lists the supported columns in display order.
func Fields() []string {
	return []string{"name", "email", "address", "phone"}
}

type Generator struct {
	newFaker func() *gofakeit.Faker
}

// New returns a generator that seeds a fresh faker per call from crypto randomness.
func New() *Generator {
	return &Generator{newFaker: func() *gofakeit.Faker { return gofakeit.New(0) }}
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed uint64) *Generator {
	return &Generator{newFaker: func() *gofakeit.Faker { return gofakeit.New(seed) }}
}

// Generate builds rows containing only the requested fields. Duplicate
// field names collapse to one column.
func (g *Generator) Generate(rows int, fields []string) (models.FakeRows, error) {
	if rows == 0 {
		rows = DefaultRows
	}
	if rows < MinRows || rows > MaxRows {
		return models.FakeRows{}, contracts.InvalidInputf("rows must be between %d and %d", MinRows, MaxRows)
	}
	selected := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		field = strings.ToLower(strings.TrimSpace(field))
		if _, ok := fieldGenerators[field]; !ok {
			return models.FakeRows{}, contracts.InvalidInputf("unknown field %q", field)
		}
		if !seen[field] {
			seen[field] = true
			selected = append(selected, field)
		}
	}
	faker := g.newFaker()
	out := make([]map[string]string, 0, rows)
	for i := 0; i < rows; i++ {
		row := make(map[string]string, len(selected))
		for _, field := range selected {
			row[field] = fieldGenerators[field](faker)
		}
		out = append(out, row)
	}
	return models.FakeRows{Fields: selected, Rows: out}, nil
}
