// Package pdftext extracts plain text from uploaded PDF documents.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"toolbox/go-backend/pkg/models"
)

// PageSeparator joins the text of consecutive pages.
const PageSeparator = "\n\n"

// Extract returns the plain text of every page. Pages without extractable
// text contribute an empty string. Parse failures are returned as errors.
func Extract(content []byte) (result models.PDFText, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			result = models.PDFText{}
			err = fmt.Errorf("pdf: malformed document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return models.PDFText{}, fmt.Errorf("pdf: %w", err)
	}
	total := reader.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return models.PDFText{Pages: total, Text: strings.Join(pages, PageSeparator)}, nil
}
