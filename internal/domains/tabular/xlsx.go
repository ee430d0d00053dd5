package tabular

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

func (c *Converter) convertXLSX(name string, content []byte) (models.FileConversion, error) {
	columns, rows, err := readFirstSheet(content)
	if err != nil {
		return models.FileConversion{}, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return models.FileConversion{}, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return models.FileConversion{}, fmt.Errorf("write csv rows: %w", err)
	}
	return models.FileConversion{
		Kind:  KindXLSX,
		Table: c.preview(columns, rows),
		Download: &models.Download{
			FileName:      swapExt(name, ".csv"),
			MimeType:      "text/csv",
			ContentBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		},
	}, nil
}

// readFirstSheet returns the header row and the data rows of the first
// worksheet, padding ragged rows to the header width.
func readFirstSheet(content []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, contracts.InvalidInputf("invalid XLSX workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, contracts.InvalidInput("workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, contracts.InvalidInput("No columns to parse from file")
	}
	width := len(all[0])
	for _, row := range all[1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	columns := uniqueColumns(padRow(all[0], width))
	rows := make([][]string, 0, len(all)-1)
	for _, row := range all[1:] {
		rows = append(rows, padRow(row, width))
	}
	return columns, rows, nil
}
