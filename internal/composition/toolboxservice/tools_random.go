package toolboxservice

import (
	"toolbox/go-backend/internal/domains/randgen"
	"toolbox/go-backend/pkg/models"
)

func (s *Service) GeneratePassword(length int, uppercase, digits, symbols bool) (result models.GeneratedValue, err error) {
	defer s.track("random.password", s.now(), &err)
	value, err := s.random.Password(randgen.PasswordOptions{
		Length:    length,
		Uppercase: uppercase,
		Digits:    digits,
		Symbols:   symbols,
	})
	if err != nil {
		return models.GeneratedValue{}, err
	}
	return models.GeneratedValue{Kind: "password", Value: value}, nil
}

func (s *Service) GenerateUUID() (result models.GeneratedValue, err error) {
	defer s.track("random.uuid", s.now(), &err)
	value, err := s.random.UUID()
	if err != nil {
		return models.GeneratedValue{}, err
	}
	return models.GeneratedValue{Kind: "uuid", Value: value}, nil
}

func (s *Service) GenerateToken(byteLength int) (result models.GeneratedValue, err error) {
	defer s.track("random.token", s.now(), &err)
	value, err := s.random.Token(byteLength)
	if err != nil {
		return models.GeneratedValue{}, err
	}
	return models.GeneratedValue{Kind: "token", Value: value}, nil
}

func (s *Service) GenerateString(length int, charset string) (result models.GeneratedValue, err error) {
	defer s.track("random.string", s.now(), &err)
	value, err := s.random.String(length, charset)
	if err != nil {
		return models.GeneratedValue{}, err
	}
	return models.GeneratedValue{Kind: "string", Value: value}, nil
}

func (s *Service) GenerateMnemonic(bits int) (result models.GeneratedValue, err error) {
	defer s.track("random.mnemonic", s.now(), &err)
	value, err := s.random.Mnemonic(bits)
	if err != nil {
		return models.GeneratedValue{}, err
	}
	return models.GeneratedValue{Kind: "mnemonic", Value: value}, nil
}
