package pdftext

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF assembles a minimal single-font document with one page per entry.
func buildPDF(pages ...string) []byte {
	var objects []string
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+i*2))
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i, text := range pages {
		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+i*2),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtract_JoinsPagesWithBlankLine(t *testing.T) {
	got, err := Extract(buildPDF("Hello PDF", "", "Second page"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got.Pages != 3 {
		t.Fatalf("expected 3 pages, got %d", got.Pages)
	}
	first := strings.Index(got.Text, "Hello PDF")
	second := strings.Index(got.Text, "Second page")
	if first < 0 || second < first {
		t.Fatalf("unexpected text %q", got.Text)
	}
	if between := got.Text[first+len("Hello PDF") : second]; strings.Count(between, PageSeparator) < 2 || strings.TrimSpace(between) != "" {
		t.Fatalf("expected two page separators around the empty page, got %q", between)
	}
}

func TestExtract_RejectsGarbage(t *testing.T) {
	if _, err := Extract([]byte("definitely not a pdf")); err == nil {
		t.Fatal("expected an error for non-PDF input")
	}
	if _, err := Extract(nil); err == nil {
		t.Fatal("expected an error for empty input")
	}
}
