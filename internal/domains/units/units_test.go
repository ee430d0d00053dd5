package units

import (
	"errors"
	"math"
	"testing"

	"toolbox/go-backend/internal/domains/contracts"
)

func TestConvert_RoundTripRecoversValue(t *testing.T) {
	for _, category := range Categories() {
		if category.Name == CategoryTemperature {
			continue
		}
		for _, from := range category.Units {
			for _, to := range category.Units {
				forward, err := Convert(category.Name, 12.5, from, to)
				if err != nil {
					t.Fatalf("convert %s %s->%s: %v", category.Name, from, to, err)
				}
				back, err := Convert(category.Name, forward.Result, to, from)
				if err != nil {
					t.Fatalf("convert back %s %s->%s: %v", category.Name, to, from, err)
				}
				if math.Abs(back.Result-12.5) > 1e-9 {
					t.Fatalf("round trip %s %s->%s->%s = %v", category.Name, from, to, from, back.Result)
				}
			}
		}
	}
}

func TestConvert_LengthText(t *testing.T) {
	got, err := Convert("Length", 1, "km", "m")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Result != 1000 {
		t.Fatalf("expected 1000, got %v", got.Result)
	}
	if got.Text != "1.0 km = 1000.0 m" {
		t.Fatalf("unexpected text %q", got.Text)
	}
}

func TestConvert_UnknownUnitIsInvalidInput(t *testing.T) {
	if _, err := Convert("Length", 1, "parsec", "m"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := Convert("Volume", 1, "l", "ml"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown category, got %v", err)
	}
}

func TestConvertTemperature(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{0, "C", "F", 32},
		{0, "C", "K", 273.15},
		{212, "F", "C", 100},
		{273.15, "K", "C", 0},
		{25, "C", "C", 25},
		{-40, "F", "C", -40},
	}
	for _, tc := range cases {
		got, err := ConvertTemperature(tc.v, tc.from, tc.to)
		if err != nil {
			t.Fatalf("convert %v %s->%s: %v", tc.v, tc.from, tc.to, err)
		}
		if math.Abs(got.Result-tc.want) > 1e-9 {
			t.Fatalf("convert %v %s->%s = %v, want %v", tc.v, tc.from, tc.to, got.Result, tc.want)
		}
	}
}

func TestConvert_RoutesTemperatureCategory(t *testing.T) {
	got, err := Convert("temperature", 0, "c", "k")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Result != 273.15 || got.Text != "0.0 C = 273.15 K" {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestConvertTemperature_RejectsUnknownUnit(t *testing.T) {
	if _, err := ConvertTemperature(1, "R", "C"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
