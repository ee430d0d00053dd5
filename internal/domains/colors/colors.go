// Package colors converts between hex color strings and RGB components.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const MessageHexLength = "HEX must be 6 chars"

// HexToRGB accepts "#rrggbb" or "rrggbb". Only leading '#' characters are stripped.
func HexToRGB(hex string) (models.Color, error) {
	h := strings.TrimLeft(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return models.Color{}, contracts.InvalidInput(MessageHexLength)
	}
	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return models.Color{}, contracts.InvalidInputf("invalid hex digits %q", h[i*2:i*2+2])
		}
		rgb[i] = int(v)
	}
	return models.Color{Hex: "#" + strings.ToLower(h), R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func RGBToHex(r, g, b int) (models.Color, error) {
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return models.Color{}, contracts.InvalidInputf("RGB component %d is outside 0..255", c)
		}
	}
	return models.Color{Hex: fmt.Sprintf("#%02x%02x%02x", r, g, b), R: r, G: g, B: b}, nil
}
