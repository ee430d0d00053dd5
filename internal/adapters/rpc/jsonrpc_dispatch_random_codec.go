package rpc

import (
	"encoding/json"

	"toolbox/go-backend/internal/domains/randgen"
)

type passwordParams struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
}

type tokenParams struct {
	Bytes *int `json:"bytes"`
}

type randomStringParams struct {
	Length  *int    `json:"length"`
	Charset *string `json:"charset"`
}

type mnemonicParams struct {
	Bits *int `json:"bits"`
}

type codecParams struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

type hashParams struct {
	Algorithm string `json:"algorithm"`
	Text      string `json:"text"`
}

type textParams struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

type textCountParams struct {
	Text string `json:"text"`
}

func (s *Server) dispatchRandomRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "random.password":
		result, rpcErr := callWithParams(rawParams, func(p passwordParams) (any, error) {
			return s.service.GeneratePassword(
				intOr(p.Length, randgen.DefaultPasswordLength),
				boolOr(p.Uppercase, true),
				boolOr(p.Digits, true),
				boolOr(p.Symbols, true),
			)
		})
		return result, rpcErr, true
	case "random.uuid":
		result, rpcErr := callWithoutParams(rawParams, func() (any, error) {
			return s.service.GenerateUUID()
		})
		return result, rpcErr, true
	case "random.token":
		result, rpcErr := callWithParams(rawParams, func(p tokenParams) (any, error) {
			return s.service.GenerateToken(intOr(p.Bytes, randgen.DefaultTokenBytes))
		})
		return result, rpcErr, true
	case "random.string":
		result, rpcErr := callWithParams(rawParams, func(p randomStringParams) (any, error) {
			return s.service.GenerateString(
				intOr(p.Length, randgen.DefaultStringLength),
				stringOr(p.Charset, randgen.DefaultCharset),
			)
		})
		return result, rpcErr, true
	case "random.mnemonic":
		result, rpcErr := callWithParams(rawParams, func(p mnemonicParams) (any, error) {
			return s.service.GenerateMnemonic(intOr(p.Bits, randgen.DefaultMnemonicBits))
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}

func (s *Server) dispatchCodecTextRPC(method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "codec.base64":
		result, rpcErr := callWithParams(rawParams, func(p codecParams) (any, error) {
			return s.service.Base64(p.Action, p.Text)
		})
		return result, rpcErr, true
	case "codec.base58":
		result, rpcErr := callWithParams(rawParams, func(p codecParams) (any, error) {
			return s.service.Base58(p.Action, p.Text)
		})
		return result, rpcErr, true
	case "codec.lz4":
		result, rpcErr := callWithParams(rawParams, func(p codecParams) (any, error) {
			return s.service.LZ4(p.Action, p.Text)
		})
		return result, rpcErr, true
	case "codec.hash":
		result, rpcErr := callWithParams(rawParams, func(p hashParams) (any, error) {
			return s.service.Hash(p.Algorithm, p.Text)
		})
		return result, rpcErr, true
	case "text.transform":
		result, rpcErr := callWithParams(rawParams, func(p textParams) (any, error) {
			return s.service.TransformText(p.Action, p.Text)
		})
		return result, rpcErr, true
	case "text.count":
		result, rpcErr := callWithParams(rawParams, func(p textCountParams) (any, error) {
			return s.service.CountText(p.Text), nil
		})
		return result, rpcErr, true
	default:
		return nil, nil, false
	}
}
