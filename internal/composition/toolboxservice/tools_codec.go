package toolboxservice

import (
	"strings"

	"toolbox/go-backend/internal/domains/codec"
	"toolbox/go-backend/pkg/models"
)

func codecActionLabel(action string) string {
	trimmed := strings.ToLower(strings.TrimSpace(action))
	if trimmed == "" {
		return codec.ActionEncode
	}
	return trimmed
}

func (s *Service) Base64(action, text string) (result models.CodecResult, err error) {
	defer s.track("codec.base64", s.now(), &err)
	out, err := codec.Base64(action, text)
	if err != nil {
		return models.CodecResult{}, err
	}
	return models.CodecResult{Codec: "base64", Action: codecActionLabel(action), Output: out}, nil
}

func (s *Service) Base58(action, text string) (result models.CodecResult, err error) {
	defer s.track("codec.base58", s.now(), &err)
	out, err := codec.Base58(action, text)
	if err != nil {
		return models.CodecResult{}, err
	}
	return models.CodecResult{Codec: "base58", Action: codecActionLabel(action), Output: out}, nil
}

func (s *Service) LZ4(action, text string) (result models.CodecResult, err error) {
	defer s.track("codec.lz4", s.now(), &err)
	out, err := codec.LZ4(action, text)
	if err != nil {
		return models.CodecResult{}, err
	}
	return models.CodecResult{Codec: "lz4", Action: codecActionLabel(action), Output: out}, nil
}

func (s *Service) Hash(algorithm, text string) (result models.HashResult, err error) {
	defer s.track("codec.hash", s.now(), &err)
	digest, err := codec.Hash(algorithm, text)
	if err != nil {
		return models.HashResult{}, err
	}
	return models.HashResult{Algorithm: strings.ToLower(strings.TrimSpace(algorithm)), Digest: digest}, nil
}
