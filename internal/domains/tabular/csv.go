package tabular

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

type columnType int

const (
	columnInt columnType = iota
	columnFloat
	columnBool
	columnString
)

func (c *Converter) convertCSV(name string, content []byte) (models.FileConversion, error) {
	columns, rows, err := readCSV(content)
	if err != nil {
		return models.FileConversion{}, err
	}
	records, err := recordsJSON(columns, rows)
	if err != nil {
		return models.FileConversion{}, err
	}
	return models.FileConversion{
		Kind:  KindCSV,
		Table: c.preview(columns, rows),
		Download: &models.Download{
			FileName:      swapExt(name, ".json"),
			MimeType:      "application/json",
			ContentBase64: base64.StdEncoding.EncodeToString(records),
		},
	}, nil
}

func readCSV(content []byte) ([]string, [][]string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, contracts.InvalidInput("No columns to parse from file")
	}
	if err != nil {
		return nil, nil, contracts.InvalidInputf("invalid CSV: %v", err)
	}
	columns := uniqueColumns(header)
	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, contracts.InvalidInputf("invalid CSV: %v", err)
		}
		if len(record) > len(columns) {
			return nil, nil, contracts.InvalidInputf("invalid CSV: expected %d fields, saw %d", len(columns), len(record))
		}
		rows = append(rows, padRow(record, len(columns)))
	}
	return columns, rows, nil
}

// uniqueColumns renames repeated headers to name.1, name.2 and so on.
func uniqueColumns(header []string) []string {
	seen := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			col = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[col]; dup {
			seen[col] = n + 1
			col = col + "." + strconv.Itoa(n+1)
		} else {
			seen[col] = 0
		}
		out[i] = col
	}
	return out
}

func padRow(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	row := make([]string, width)
	copy(row, record)
	return row
}

func inferColumn(rows [][]string, idx int) columnType {
	kind := columnInt
	nonEmpty := 0
	for _, row := range rows {
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		nonEmpty++
		switch kind {
		case columnInt:
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err == nil {
				kind = columnFloat
				continue
			}
			if _, ok := parseBool(cell); ok && nonEmpty == 1 {
				kind = columnBool
				continue
			}
			return columnString
		case columnFloat:
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				return columnString
			}
		case columnBool:
			if _, ok := parseBool(cell); !ok {
				return columnString
			}
		}
	}
	if nonEmpty == 0 {
		return columnFloat
	}
	if kind == columnInt && hasEmptyCell(rows, idx) {
		return columnFloat
	}
	return kind
}

func hasEmptyCell(rows [][]string, idx int) bool {
	for _, row := range rows {
		if strings.TrimSpace(row[idx]) == "" {
			return true
		}
	}
	return false
}

func parseBool(cell string) (bool, bool) {
	switch cell {
	case "True", "true", "TRUE":
		return true, true
	case "False", "false", "FALSE":
		return false, true
	}
	return false, false
}

// recordsJSON renders rows as a JSON array of objects in column order.
// Numeric and boolean columns are typed; empty cells become null.
func recordsJSON(columns []string, rows [][]string) ([]byte, error) {
	types := make([]columnType, len(columns))
	for i := range columns {
		types[i] = inferColumn(rows, i)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('[')
	for r, row := range rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, col := range columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, enc, col); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeCell(&buf, enc, types[i], row[i]); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, enc *json.Encoder, s string) error {
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func writeCell(buf *bytes.Buffer, enc *json.Encoder, kind columnType, raw string) error {
	cell := strings.TrimSpace(raw)
	if cell == "" {
		buf.WriteString("null")
		return nil
	}
	switch kind {
	case columnInt:
		n, _ := strconv.ParseInt(cell, 10, 64)
		buf.WriteString(strconv.FormatInt(n, 10))
	case columnFloat:
		f, _ := strconv.ParseFloat(cell, 64)
		buf.WriteString(formatJSONFloat(f))
	case columnBool:
		b, _ := parseBool(cell)
		buf.WriteString(strconv.FormatBool(b))
	default:
		return writeJSONString(buf, enc, raw)
	}
	return nil
}

func formatJSONFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
