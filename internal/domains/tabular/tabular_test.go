package tabular

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"toolbox/go-backend/internal/domains/contracts"
)

func decodeDownload(t *testing.T, content string) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		t.Fatalf("decode download: %v", err)
	}
	return string(raw)
}

func TestConvert_CSVToRecordsJSON(t *testing.T) {
	c := NewConverter(Options{})
	csvData := "name,age,score,active\nAda,36,1.5,True\nLinus,,2,false\n"
	got, err := c.Convert(Upload{Name: "people.csv", Content: []byte(csvData)})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Kind != KindCSV || got.Table == nil {
		t.Fatalf("unexpected conversion %+v", got)
	}
	if got.Table.TotalRows != 2 || len(got.Table.Columns) != 4 {
		t.Fatalf("unexpected table %+v", got.Table)
	}
	if got.Download == nil || got.Download.FileName != "people.json" {
		t.Fatalf("unexpected download %+v", got.Download)
	}
	want := `[{"name":"Ada","age":36.0,"score":1.5,"active":true},{"name":"Linus","age":null,"score":2.0,"active":false}]`
	if body := decodeDownload(t, got.Download.ContentBase64); body != want {
		t.Fatalf("unexpected records:\n got %s\nwant %s", body, want)
	}
}

func TestConvert_CSVIntegerColumnStaysInteger(t *testing.T) {
	records, err := recordsJSON([]string{"id", "tag"}, [][]string{{"1", "<a&b>"}, {"2", "x"}})
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if string(records) != `[{"id":1,"tag":"<a&b>"},{"id":2,"tag":"x"}]` {
		t.Fatalf("unexpected records %s", records)
	}
}

func TestConvert_CSVPreviewIsCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 0; i < 10; i++ {
		b.WriteString("1\n")
	}
	got, err := NewConverter(Options{PreviewRows: 3}).Convert(Upload{Name: "n.csv", Content: []byte(b.String())})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(got.Table.Rows) != 3 || !got.Table.Truncated || got.Table.TotalRows != 10 {
		t.Fatalf("unexpected preview %+v", got.Table)
	}
}

func TestUniqueColumns(t *testing.T) {
	got := uniqueColumns([]string{"a", "a", "", "a"})
	want := []string{"a", "a.1", "Unnamed: 2", "a.2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConvert_XLSXToCSV(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]any{"city", "population"}); err != nil {
		t.Fatalf("header: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]any{"Oslo", 709000}); err != nil {
		t.Fatalf("row: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	got, err := NewConverter(Options{}).Convert(Upload{Name: "cities.xlsx", Content: buf.Bytes()})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got.Download == nil || got.Download.FileName != "cities.csv" {
		t.Fatalf("unexpected download %+v", got.Download)
	}
	if body := decodeDownload(t, got.Download.ContentBase64); body != "city,population\nOslo,709000\n" {
		t.Fatalf("unexpected csv %q", body)
	}
}

func TestConvert_InvalidJSON(t *testing.T) {
	_, err := NewConverter(Options{}).Convert(Upload{Name: "broken.json", Content: []byte("{nope")})
	var inputErr *contracts.InputError
	if !errors.As(err, &inputErr) || inputErr.Message != MessageInvalidJSON {
		t.Fatalf("expected %q, got %v", MessageInvalidJSON, err)
	}
}

func TestConvert_JSONDocument(t *testing.T) {
	got, err := NewConverter(Options{}).Convert(Upload{Name: "doc.JSON", Content: []byte(`{"a":[1,2]}`)})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	doc, ok := got.Document.(map[string]any)
	if !ok || len(doc["a"].([]any)) != 2 {
		t.Fatalf("unexpected document %#v", got.Document)
	}
}

func TestConvert_YAMLToJSON(t *testing.T) {
	got, err := NewConverter(Options{}).Convert(Upload{Name: "conf.yml", Content: []byte("server:\n  port: 8080\n1: one\n")})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(decodeDownload(t, got.Download.ContentBase64)), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	server, _ := decoded["server"].(map[string]any)
	if server["port"] != float64(8080) || decoded["1"] != "one" {
		t.Fatalf("unexpected document %#v", decoded)
	}
	if got.Download.FileName != "conf.json" {
		t.Fatalf("unexpected file name %q", got.Download.FileName)
	}
}

func TestConvert_HCLToJSON(t *testing.T) {
	src := `
name    = "toolbox"
workers = 4
tags    = ["a", "b"]

listener "http" {
  port = 8787
}

limits {
  rps = 20
}
`
	got, err := NewConverter(Options{}).Convert(Upload{Name: "main.hcl", Content: []byte(src)})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	doc := got.Document.(map[string]any)
	if doc["name"] != "toolbox" || doc["workers"] != float64(4) {
		t.Fatalf("unexpected attributes %#v", doc)
	}
	listener := doc["listener"].(map[string]any)["http"].(map[string]any)
	if listener["port"] != float64(8787) {
		t.Fatalf("unexpected listener %#v", listener)
	}
	limits := doc["limits"].([]any)
	if len(limits) != 1 {
		t.Fatalf("unexpected limits %#v", limits)
	}
}

func TestConvert_HCLRejectsVariables(t *testing.T) {
	_, err := NewConverter(Options{}).Convert(Upload{Name: "vars.hcl", Content: []byte("a = var.b\n")})
	if !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestConvert_RejectsUnacceptedNames(t *testing.T) {
	c := NewConverter(Options{Patterns: []string{"*.csv"}})
	if _, err := c.Convert(Upload{Name: "data.json", Content: []byte("{}")}); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !c.Accepts("reports/Q1.CSV") {
		t.Fatal("expected case-insensitive base-name match")
	}
	if _, err := NewConverter(Options{}).Convert(Upload{Name: "image.png"}); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input for png, got %v", err)
	}
}

func TestNeedsTables(t *testing.T) {
	if !NeedsTables(KindCSV) || !NeedsTables(KindXLSX) || NeedsTables(KindJSON) {
		t.Fatal("unexpected tables requirement")
	}
}
