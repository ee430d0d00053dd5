// Package overview describes the dashboard: its menu and the banner listing
// optional features that are switched off.
package overview

import (
	"strings"

	"toolbox/go-backend/pkg/models"
)

const (
	Title       = "Toolbox"
	Description = "A collection of small, independent utilities. Pick a tool from the menu."
)

var menu = []string{
	"Overview", "Calculator", "Units", "Random", "Encode/Hash", "Text", "Files",
	"QR & Image", "PDF", "HTTP", "Dates", "Colors", "Faker", "Deploy",
}

func Menu() []string {
	return append([]string(nil), menu...)
}

// Warning renders the banner text; it is empty when nothing is missing.
func Warning(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return "Optional features disabled: " + strings.Join(missing, ", ")
}

func Build(missing []string) models.Overview {
	if missing == nil {
		missing = []string{}
	}
	return models.Overview{
		Title:               Title,
		Description:         Description,
		Menu:                Menu(),
		MissingCapabilities: missing,
		Warning:             Warning(missing),
	}
}
