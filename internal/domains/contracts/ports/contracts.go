package ports

import (
	"context"

	"toolbox/go-backend/pkg/models"
)

// OverviewAPI describes the dashboard landing page.
type OverviewAPI interface {
	Overview() models.Overview
}

// CalcAPI never fails: evaluation problems are reported in the result text.
type CalcAPI interface {
	Evaluate(expression string) models.CalcResult
}

type UnitsAPI interface {
	UnitCategories() []models.UnitCategory
	ConvertUnits(category string, value float64, from, to string) (models.Conversion, error)
	ConvertTemperature(value float64, from, to string) (models.Conversion, error)
}

type RandomAPI interface {
	GeneratePassword(length int, uppercase, digits, symbols bool) (models.GeneratedValue, error)
	GenerateUUID() (models.GeneratedValue, error)
	GenerateToken(byteLength int) (models.GeneratedValue, error)
	GenerateString(length int, charset string) (models.GeneratedValue, error)
	GenerateMnemonic(bits int) (models.GeneratedValue, error)
}

type CodecAPI interface {
	Base64(action, text string) (models.CodecResult, error)
	Base58(action, text string) (models.CodecResult, error)
	LZ4(action, text string) (models.CodecResult, error)
	Hash(algorithm, text string) (models.HashResult, error)
}

type TextAPI interface {
	TransformText(action, text string) (models.TextResult, error)
	CountText(text string) models.TextCount
}

type FilesAPI interface {
	ConvertFile(name string, content []byte) (models.FileConversion, error)
}

type ImageAPI interface {
	QRCode(data string, size int) (models.QRCode, error)
	PreviewImage(name string, content []byte) (models.ImageInfo, error)
	ImageToASCII(name string, content []byte, width int) (models.ASCIIArt, error)
}

type PDFAPI interface {
	ExtractPDFText(content []byte) (models.PDFText, error)
}

type HTTPAPI interface {
	HTTPGet(ctx context.Context, target string) (models.HTTPResponse, error)
}

type DatesAPI interface {
	DateDiff(a, b string) (models.DateDiff, error)
	DateAdd(date string, days int) (models.DateShift, error)
}

type ColorsAPI interface {
	HexToRGB(hex string) (models.Color, error)
	RGBToHex(r, g, b int) (models.Color, error)
}

type FakerAPI interface {
	GenerateFakeData(rows int, fields []string) (models.FakeRows, error)
}

type DeployAPI interface {
	DeployArtifacts() []models.Artifact
	DeployArtifact(name string) (models.Artifact, error)
	DeployFile(name string) ([]byte, string, error)
}

// ToolboxService is the full tool surface served over RPC and the CLI.
type ToolboxService interface {
	OverviewAPI
	CalcAPI
	UnitsAPI
	RandomAPI
	CodecAPI
	TextAPI
	FilesAPI
	ImageAPI
	PDFAPI
	HTTPAPI
	DatesAPI
	ColorsAPI
	FakerAPI
	DeployAPI
}
