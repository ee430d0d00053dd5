// Package textutil holds the text tool: case changes, blank line removal,
// Unicode normalization and word/char counts.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	ActionUpper          = "upper"
	ActionLower          = "lower"
	ActionTitle          = "title"
	ActionTrimBlankLines = "trim_blank_lines"
	ActionNormalizeNFC   = "nfc"
	ActionNormalizeNFKC  = "nfkc"
)

// Actions lists the supported transforms in display order.
func Actions() []string {
	return []string{ActionUpper, ActionLower, ActionTitle, ActionTrimBlankLines, ActionNormalizeNFC, ActionNormalizeNFKC}
}

func Transform(action, text string) (models.TextResult, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	var out string
	switch action {
	case ActionUpper:
		out = cases.Upper(language.Und).String(text)
	case ActionLower:
		out = cases.Lower(language.Und).String(text)
	case ActionTitle:
		out = cases.Title(language.Und).String(text)
	case ActionTrimBlankLines:
		out = TrimBlankLines(text)
	case ActionNormalizeNFC:
		out = norm.NFC.String(text)
	case ActionNormalizeNFKC:
		out = norm.NFKC.String(text)
	default:
		return models.TextResult{}, contracts.InvalidInputf("unknown text action %q", action)
	}
	return models.TextResult{Action: action, Text: out}, nil
}

// TrimBlankLines drops lines that are empty once surrounding whitespace is removed.
func TrimBlankLines(text string) string {
	lines := splitLines(text)
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Count reports whitespace-separated words and characters (runes).
func Count(text string) models.TextCount {
	return models.TextCount{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}
