package rpc

import (
	"encoding/json"
)

type calcParams struct {
	Expression string `json:"expression"`
}

type unitsConvertParams struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
}

type temperatureParams struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type dateDiffParams struct {
	A string `json:"a"`
	B string `json:"b"`
}

type dateAddParams struct {
	Date string `json:"date"`
	Days int    `json:"days"`
}

type hexParams struct {
	Hex string `json:"hex"`
}

type rgbParams struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) dispatchOverviewRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "toolbox.overview":
		result, rpcErr := callWithoutParams(rawParams, func() (any, error) {
			return s.service.Overview(), nil
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}

func (s *Server) dispatchCalcUnitsRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "calc.evaluate":
		result, rpcErr := callWithParams(rawParams, func(p calcParams) (any, error) {
			return s.service.Evaluate(p.Expression), nil
		})
		return result, rpcErr, true
	case "units.categories":
		result, rpcErr := callWithoutParams(rawParams, func() (any, error) {
			return s.service.UnitCategories(), nil
		})
		return result, rpcErr, true
	case "units.convert":
		result, rpcErr := callWithParams(rawParams, func(p unitsConvertParams) (any, error) {
			return s.service.ConvertUnits(p.Category, p.Value, p.From, p.To)
		})
		return result, rpcErr, true
	case "units.temperature":
		result, rpcErr := callWithParams(rawParams, func(p temperatureParams) (any, error) {
			return s.service.ConvertTemperature(p.Value, p.From, p.To)
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}

func (s *Server) dispatchDatesColorsRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "dates.diff":
		result, rpcErr := callWithParams(rawParams, func(p dateDiffParams) (any, error) {
			return s.service.DateDiff(p.A, p.B)
		})
		return result, rpcErr, true
	case "dates.add":
		result, rpcErr := callWithParams(rawParams, func(p dateAddParams) (any, error) {
			return s.service.DateAdd(p.Date, p.Days)
		})
		return result, rpcErr, true
	case "colors.hex_to_rgb":
		result, rpcErr := callWithParams(rawParams, func(p hexParams) (any, error) {
			return s.service.HexToRGB(p.Hex)
		})
		return result, rpcErr, true
	case "colors.rgb_to_hex":
		result, rpcErr := callWithParams(rawParams, func(p rgbParams) (any, error) {
			return s.service.RGBToHex(p.R, p.G, p.B)
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}
