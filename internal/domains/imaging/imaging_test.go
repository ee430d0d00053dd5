package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"toolbox/go-backend/internal/domains/contracts"
)

func encodePNG(t *testing.T, w, h int, fill color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestQR_ProducesPNGOfRequestedSize(t *testing.T) {
	got, err := QR("https://example.com", 0)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if got.Size != DefaultQRSize || got.Download.FileName != QRFileName || got.Download.MimeType != "image/png" {
		t.Fatalf("unexpected qr %+v", got)
	}
	raw, err := base64.StdEncoding.DecodeString(got.Download.ContentBase64)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != DefaultQRSize || cfg.Height != DefaultQRSize {
		t.Fatalf("expected %dx%d, got %dx%d", DefaultQRSize, DefaultQRSize, cfg.Width, cfg.Height)
	}
}

func TestQR_RejectsEmptyDataAndBadSize(t *testing.T) {
	if _, err := QR("  ", 0); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := QR("x", 10); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for tiny size, got %v", err)
	}
}

func TestPreview_ReportsFormatAndSize(t *testing.T) {
	p := NewProcessor(nil)
	got, err := p.Preview("photo.png", encodePNG(t, 7, 3, color.White))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got.Format != "png" || got.Width != 7 || got.Height != 3 {
		t.Fatalf("unexpected info %+v", got)
	}
	if !strings.HasPrefix(got.DataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data url prefix %q", got.DataURL[:30])
	}
}

func TestPreview_RejectsNonImages(t *testing.T) {
	p := NewProcessor(nil)
	if _, err := p.Preview("notes.txt", []byte("hello")); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for name, got %v", err)
	}
	if _, err := p.Preview("fake.png", []byte("hello")); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for content, got %v", err)
	}
}

func TestASCII_UsesRampAndAspect(t *testing.T) {
	p := NewProcessor(nil)
	white, err := p.ASCII("white.png", encodePNG(t, 100, 100, color.White), 40)
	if err != nil {
		t.Fatalf("ascii: %v", err)
	}
	if white.Height != 22 {
		t.Fatalf("expected height 22, got %d", white.Height)
	}
	lines := strings.Split(white.Text, "\n")
	if len(lines) != 22 || len(lines[0]) != 40 {
		t.Fatalf("unexpected shape %d lines x %d", len(lines), len(lines[0]))
	}
	if strings.Trim(white.Text, " \n") != "" {
		t.Fatalf("white image should render as spaces, got %q", lines[0])
	}

	black, err := p.ASCII("black.png", encodePNG(t, 100, 10, color.Black), 0)
	if err != nil {
		t.Fatalf("ascii: %v", err)
	}
	if black.Width != DefaultASCIIWidth || black.Height != 4 {
		t.Fatalf("unexpected shape %dx%d", black.Width, black.Height)
	}
	if strings.Trim(black.Text, "@\n") != "" {
		t.Fatalf("black image should render as @, got %q", black.Text)
	}
}

func TestASCII_MinimumHeightIsOne(t *testing.T) {
	got, err := NewProcessor(nil).ASCII("strip.png", encodePNG(t, 400, 1, color.Black), 40)
	if err != nil {
		t.Fatalf("ascii: %v", err)
	}
	if got.Height != 1 || strings.Contains(got.Text, "\n") {
		t.Fatalf("expected a single row, got %+v", got)
	}
}

func TestASCII_RejectsWidthOutOfRange(t *testing.T) {
	if _, err := NewProcessor(nil).ASCII("a.png", encodePNG(t, 2, 2, color.White), 201); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestASCII_RejectsOutputTallerThanLimit(t *testing.T) {
	p := NewProcessor(nil)
	_, err := p.ASCII("needle.png", encodePNG(t, 1, 50000, color.Gray{Y: 128}), 80)
	if !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for a 1x50000 image, got %v", err)
	}

	tall, err := p.ASCII("tall.png", encodePNG(t, 1, 36, color.Black), 40)
	if err != nil {
		t.Fatalf("ascii: %v", err)
	}
	if tall.Height > MaxASCIIHeight || len(strings.Split(tall.Text, "\n")) != tall.Height {
		t.Fatalf("unexpected tall rendering height=%d", tall.Height)
	}
}
