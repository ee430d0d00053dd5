// Package calc implements the calculator tool: an allow-listed arithmetic
// evaluator. Input is screened against a fixed character set before any
// parsing happens, and every failure is reported as a string result rather
// than an error.
package calc

import "strings"

const (
	MessageEmpty      = "Empty expression"
	MessageDisallowed = "Disallowed character in expression"
)

const allowedChars = "0123456789+-*/()., eE"

// Calculator screens expressions and hands accepted ones to its evaluator.
type Calculator struct {
	eval func(expr string) (Value, error)
}

func New() *Calculator {
	return &Calculator{eval: Eval}
}

var defaultCalculator = New()

// Evaluate runs expr through the default calculator.
func Evaluate(expr string) (string, bool) {
	return defaultCalculator.Evaluate(expr)
}

// Evaluate returns the formatted result and true, or a descriptive message and false.
func (c *Calculator) Evaluate(expr string) (string, bool) {
	if expr == "" {
		return MessageEmpty, false
	}
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(expr)
	if !Allowed(cleaned) {
		return MessageDisallowed, false
	}
	value, err := c.eval(cleaned)
	if err != nil {
		return "Error: " + err.Error(), false
	}
	return value.String(), true
}

// Allowed reports whether every character of expr is in the allow-list.
func Allowed(expr string) bool {
	for _, ch := range expr {
		if !strings.ContainsRune(allowedChars, ch) {
			return false
		}
	}
	return true
}
