package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	DefaultASCIIWidth = 80
	MinASCIIWidth     = 40
	MaxASCIIWidth     = 200
	MaxASCIIHeight    = MaxASCIIWidth * 4

	// asciiRamp runs from dark to light.
	asciiRamp = "@%#*+=-:. "
	// Terminal cells are roughly twice as tall as they are wide.
	asciiAspect = 0.55

	maxDecodePixels = 40_000_000
)

var DefaultPatterns = []string{"*.{png,jpg,jpeg,gif,bmp,webp}"}

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
}

type Processor struct {
	patterns []string
}

func NewProcessor(patterns []string) *Processor {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Processor{patterns: append([]string(nil), patterns...)}
}

func (p *Processor) checkName(name string) error {
	base := strings.ToLower(path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")))
	if base == "" || base == "." {
		return contracts.InvalidInput("file name is required")
	}
	for _, pat := range p.patterns {
		if ok, err := doublestar.Match(strings.ToLower(pat), base); err == nil && ok {
			return nil
		}
	}
	return contracts.InvalidInputf("file %q is not an accepted image type", name)
}

// Preview reports the decoded format and dimensions and echoes the bytes as a data URL.
func (p *Processor) Preview(name string, content []byte) (models.ImageInfo, error) {
	if err := p.checkName(name); err != nil {
		return models.ImageInfo{}, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return models.ImageInfo{}, contracts.InvalidInputf("cannot decode image: %v", err)
	}
	mime, ok := mimeTypes[format]
	if !ok {
		mime = "application/octet-stream"
	}
	return models.ImageInfo{
		Format:  format,
		Width:   cfg.Width,
		Height:  cfg.Height,
		DataURL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content),
	}, nil
}

// ASCII renders the image as text width characters wide.
func (p *Processor) ASCII(name string, content []byte, width int) (models.ASCIIArt, error) {
	if err := p.checkName(name); err != nil {
		return models.ASCIIArt{}, err
	}
	if width == 0 {
		width = DefaultASCIIWidth
	}
	if width < MinASCIIWidth || width > MaxASCIIWidth {
		return models.ASCIIArt{}, contracts.InvalidInputf("width must be between %d and %d", MinASCIIWidth, MaxASCIIWidth)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return models.ASCIIArt{}, contracts.InvalidInputf("cannot decode image: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxDecodePixels {
		return models.ASCIIArt{}, contracts.InvalidInputf("image dimensions %dx%d are not supported", cfg.Width, cfg.Height)
	}
	height := asciiHeight(cfg.Width, cfg.Height, width)
	if height > MaxASCIIHeight {
		return models.ASCIIArt{}, contracts.InvalidInputf("image %dx%d would render %d rows at width %d, limit is %d", cfg.Width, cfg.Height, height, width, MaxASCIIHeight)
	}
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return models.ASCIIArt{}, contracts.InvalidInputf("cannot decode image: %v", err)
	}
	text := renderASCII(img, width, height)
	return models.ASCIIArt{Width: width, Height: height, Text: text}, nil
}

// asciiHeight keeps the aspect ratio after correcting for tall terminal cells.
func asciiHeight(imgWidth, imgHeight, width int) int {
	height := int(float64(imgHeight) / float64(imgWidth) * float64(width) * asciiAspect)
	if height < 1 {
		height = 1
	}
	return height
}

func renderASCII(img image.Image, width, height int) string {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	scaled := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, bounds, draw.Src, nil)

	var b strings.Builder
	b.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := scaled.Pix[y*scaled.Stride : y*scaled.Stride+width]
		for _, px := range row {
			b.WriteByte(asciiRamp[int(px)*len(asciiRamp)/256])
		}
	}
	return b.String()
}
