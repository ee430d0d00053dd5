package toolboxservice

import (
	"strings"

	"toolbox/go-backend/internal/domains/colors"
	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/internal/domains/datecalc"
	"toolbox/go-backend/internal/domains/overview"
	"toolbox/go-backend/internal/domains/textutil"
	"toolbox/go-backend/internal/domains/units"
	"toolbox/go-backend/pkg/models"
)

func (s *Service) Overview() models.Overview {
	var err error
	defer s.track("toolbox.overview", s.now(), &err)
	return overview.Build(s.caps.Missing())
}

// Evaluate reports calculator failures in the result text rather than as an
// error; they are still tracked as rejected input.
func (s *Service) Evaluate(expression string) models.CalcResult {
	var rejected error
	defer s.track("calc.evaluate", s.now(), &rejected)
	result, ok := s.calculator.Evaluate(expression)
	if !ok {
		rejected = contracts.InvalidInput(result)
	}
	return models.CalcResult{Expression: expression, Result: result, OK: ok}
}

func (s *Service) UnitCategories() []models.UnitCategory {
	var err error
	defer s.track("units.categories", s.now(), &err)
	return units.Categories()
}

func (s *Service) ConvertUnits(category string, value float64, from, to string) (result models.Conversion, err error) {
	defer s.track("units.convert", s.now(), &err)
	return units.Convert(category, value, from, to)
}

func (s *Service) ConvertTemperature(value float64, from, to string) (result models.Conversion, err error) {
	defer s.track("units.temperature", s.now(), &err)
	return units.ConvertTemperature(value, from, to)
}

func (s *Service) TransformText(action, text string) (result models.TextResult, err error) {
	defer s.track("text.transform", s.now(), &err)
	return textutil.Transform(action, text)
}

func (s *Service) CountText(text string) models.TextCount {
	var err error
	defer s.track("text.count", s.now(), &err)
	return textutil.Count(text)
}

func (s *Service) DateDiff(a, b string) (result models.DateDiff, err error) {
	defer s.track("dates.diff", s.now(), &err)
	return datecalc.Diff(a, b)
}

func (s *Service) DateAdd(date string, days int) (result models.DateShift, err error) {
	defer s.track("dates.add", s.now(), &err)
	if strings.TrimSpace(date) == "" {
		date = datecalc.Today(s.now)
	}
	return datecalc.Add(date, days)
}

func (s *Service) HexToRGB(hex string) (result models.Color, err error) {
	defer s.track("colors.hex_to_rgb", s.now(), &err)
	return colors.HexToRGB(hex)
}

func (s *Service) RGBToHex(r, g, b int) (result models.Color, err error) {
	defer s.track("colors.rgb_to_hex", s.now(), &err)
	return colors.RGBToHex(r, g, b)
}
