package contracts

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrCapabilityUnavailable = errors.New("capability is unavailable")

const (
	ErrorCategoryInput      = "input"
	ErrorCategoryCapability = "capability"
	ErrorCategoryNetwork    = "network"
	ErrorCategoryTool       = "tool"
)

// CategorizedError tags an error with the taxonomy bucket used for rpc codes and metrics.
type CategorizedError struct {
	Category string
	Err      error
}

func (e *CategorizedError) Error() string {
	return e.Err.Error()
}

func (e *CategorizedError) Unwrap() error {
	return e.Err
}

// InputError carries a message meant to be shown to the user verbatim.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func InvalidInput(message string) error {
	return &InputError{Message: strings.TrimSpace(message)}
}

func InvalidInputf(format string, args ...any) error {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// CapabilityError reports a tool whose optional capability is switched off.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return e.Capability + " support is not available"
}

func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapabilityUnavailable
}

func normalizeErrorCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case ErrorCategoryInput:
		return ErrorCategoryInput
	case ErrorCategoryCapability:
		return ErrorCategoryCapability
	case ErrorCategoryNetwork:
		return ErrorCategoryNetwork
	default:
		return ErrorCategoryTool
	}
}

func WrapCategorizedError(category string, err error) error {
	if err == nil {
		return nil
	}
	var existing *CategorizedError
	if errors.As(err, &existing) {
		return &CategorizedError{
			Category: normalizeErrorCategory(existing.Category),
			Err:      existing.Err,
		}
	}
	return &CategorizedError{
		Category: normalizeErrorCategory(category),
		Err:      err,
	}
}

func ErrorCategory(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return ErrorCategoryInput
	case errors.Is(err, ErrCapabilityUnavailable):
		return ErrorCategoryCapability
	}
	var classified *CategorizedError
	if errors.As(err, &classified) {
		return normalizeErrorCategory(classified.Category)
	}
	return ErrorCategoryTool
}
