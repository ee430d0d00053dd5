package contracts

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapCategorizedError_NewErrorUsesProvidedCategory(t *testing.T) {
	wrapped := WrapCategorizedError(ErrorCategoryNetwork, errors.New("boom"))
	var classified *CategorizedError
	if !errors.As(wrapped, &classified) {
		t.Fatalf("expected categorized error, got %T", wrapped)
	}
	if classified.Category != ErrorCategoryNetwork {
		t.Fatalf("expected category=%q, got %q", ErrorCategoryNetwork, classified.Category)
	}
}

func TestWrapCategorizedError_NormalizesUnknownCategoryToTool(t *testing.T) {
	wrapped := WrapCategorizedError("unknown", errors.New("boom"))
	if got := ErrorCategory(wrapped); got != ErrorCategoryTool {
		t.Fatalf("expected category=%q, got %q", ErrorCategoryTool, got)
	}
}

func TestErrorCategory_DefaultsToToolForRegularErrors(t *testing.T) {
	if got := ErrorCategory(errors.New("plain")); got != ErrorCategoryTool {
		t.Fatalf("expected default category=%q, got %q", ErrorCategoryTool, got)
	}
}

func TestErrorCategory_InputErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("colors: %w", InvalidInput("HEX must be 6 chars"))
	if got := ErrorCategory(err); got != ErrorCategoryInput {
		t.Fatalf("expected category=%q, got %q", ErrorCategoryInput, got)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Message != "HEX must be 6 chars" {
		t.Fatalf("expected input error message to be preserved, got %v", err)
	}
}

func TestErrorCategory_CapabilityError(t *testing.T) {
	err := &CapabilityError{Capability: "qrcode"}
	if !errors.Is(err, ErrCapabilityUnavailable) {
		t.Fatal("capability error must match ErrCapabilityUnavailable")
	}
	if got := ErrorCategory(err); got != ErrorCategoryCapability {
		t.Fatalf("expected category=%q, got %q", ErrorCategoryCapability, got)
	}
	if err.Error() != "qrcode support is not available" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
