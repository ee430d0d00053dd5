// Package imaging renders QR codes and inspects uploaded images: format and
// size for previews, and a character-ramp rendering for ASCII art.
package imaging

import (
	"encoding/base64"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
	QRFileName    = "qrcode.png"
)

// QR encodes data as a PNG with medium error recovery.
func QR(data string, size int) (models.QRCode, error) {
	if strings.TrimSpace(data) == "" {
		return models.QRCode{}, contracts.InvalidInput("QR data is empty")
	}
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return models.QRCode{}, contracts.InvalidInputf("QR size must be between %d and %d pixels", MinQRSize, MaxQRSize)
	}
	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return models.QRCode{}, err
	}
	return models.QRCode{
		Data: data,
		Size: size,
		Download: models.Download{
			FileName:      QRFileName,
			MimeType:      "image/png",
			ContentBase64: base64.StdEncoding.EncodeToString(png),
		},
	}, nil
}
