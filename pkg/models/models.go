package models

// Download is a derived file handed back to the caller inline.
type Download struct {
	FileName      string `json:"file_name"`
	MimeType      string `json:"mime_type"`
	ContentBase64 string `json:"content_base64"`
}

type Overview struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Menu                []string `json:"menu"`
	MissingCapabilities []string `json:"missing_capabilities"`
	Warning             string   `json:"warning,omitempty"`
}

type CalcResult struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	OK         bool   `json:"ok"`
}

type UnitCategory struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

type Conversion struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
	Result   float64 `json:"result"`
	Text     string  `json:"text"`
}

type GeneratedValue struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type CodecResult struct {
	Codec  string `json:"codec"`
	Action string `json:"action"`
	Output string `json:"output"`
}

type HashResult struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

type TextResult struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

type TextCount struct {
	Words int `json:"words"`
	Chars int `json:"chars"`
}

type Table struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
	Truncated bool       `json:"truncated"`
}

type FileConversion struct {
	Kind     string    `json:"kind"`
	Table    *Table    `json:"table,omitempty"`
	Document any       `json:"document,omitempty"`
	Download *Download `json:"download,omitempty"`
}

type QRCode struct {
	Data     string   `json:"data"`
	Size     int      `json:"size"`
	Download Download `json:"download"`
}

type ImageInfo struct {
	Format  string `json:"format"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	DataURL string `json:"data_url"`
}

type ASCIIArt struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Text   string `json:"text"`
}

type PDFText struct {
	Pages int    `json:"pages"`
	Text  string `json:"text"`
}

type HTTPResponse struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
	Truncated  bool   `json:"truncated"`
}

type DateDiff struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Days int    `json:"days"`
}

type DateShift struct {
	Date   string `json:"date"`
	Days   int    `json:"days"`
	Result string `json:"result"`
}

type Color struct {
	Hex string `json:"hex"`
	R   int    `json:"r"`
	G   int    `json:"g"`
	B   int    `json:"b"`
}

type FakeRows struct {
	Fields []string            `json:"fields"`
	Rows   []map[string]string `json:"rows"`
}

type Artifact struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Download    Download `json:"download"`
}
