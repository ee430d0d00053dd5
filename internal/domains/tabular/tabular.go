// Package tabular converts uploaded data files: CSV to JSON records, XLSX to
// CSV, and JSON, YAML or HCL documents to JSON.
package tabular

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	KindCSV  = "csv"
	KindXLSX = "xlsx"
	KindJSON = "json"
	KindYAML = "yaml"
	KindHCL  = "hcl"
)

const DefaultPreviewRows = 100

var DefaultPatterns = []string{"*.{csv,json,xlsx,yaml,yml,hcl}"}

// Upload is a file handed to the tool by the browser.
type Upload struct {
	Name    string
	Content []byte
}

type Options struct {
	Patterns    []string
	PreviewRows int
}

type Converter struct {
	patterns    []string
	previewRows int
}

func NewConverter(opts Options) *Converter {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	previewRows := opts.PreviewRows
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}
	return &Converter{patterns: append([]string(nil), patterns...), previewRows: previewRows}
}

// KindOf maps a file name to its converter by extension.
func KindOf(name string) (string, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return KindCSV, true
	case ".xlsx":
		return KindXLSX, true
	case ".json":
		return KindJSON, true
	case ".yaml", ".yml":
		return KindYAML, true
	case ".hcl":
		return KindHCL, true
	default:
		return "", false
	}
}

// NeedsTables reports whether converting kind requires the spreadsheet capability.
func NeedsTables(kind string) bool {
	return kind == KindCSV || kind == KindXLSX
}

// Accepts reports whether name matches one of the configured upload patterns.
func (c *Converter) Accepts(name string) bool {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	for _, pat := range c.patterns {
		if ok, err := doublestar.Match(strings.ToLower(pat), base); err == nil && ok {
			return true
		}
	}
	return false
}

func (c *Converter) Convert(upload Upload) (models.FileConversion, error) {
	name := strings.TrimSpace(upload.Name)
	if name == "" {
		return models.FileConversion{}, contracts.InvalidInput("file name is required")
	}
	if !c.Accepts(name) {
		return models.FileConversion{}, contracts.InvalidInputf("file %q is not an accepted upload type", name)
	}
	kind, ok := KindOf(name)
	if !ok {
		return models.FileConversion{}, contracts.InvalidInputf("file %q has no converter", name)
	}
	switch kind {
	case KindCSV:
		return c.convertCSV(name, upload.Content)
	case KindXLSX:
		return c.convertXLSX(name, upload.Content)
	case KindJSON:
		return convertJSON(upload.Content)
	case KindYAML:
		return convertYAML(name, upload.Content)
	default:
		return convertHCL(name, upload.Content)
	}
}

func (c *Converter) preview(columns []string, rows [][]string) *models.Table {
	table := &models.Table{Columns: columns, TotalRows: len(rows)}
	if len(rows) > c.previewRows {
		table.Rows = rows[:c.previewRows]
		table.Truncated = true
	} else {
		table.Rows = rows
	}
	if table.Rows == nil {
		table.Rows = [][]string{}
	}
	return table
}

func swapExt(name, ext string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base)) + ext
}
