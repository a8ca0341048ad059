// Package render turns report content into downloadable documents.
package render

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

const textContentType = "text/plain; charset=utf-8"

// TextRenderer lays a report out as plain text, centring the title,
// separators and footer on the separator width.
type TextRenderer struct{}

// NewTextRenderer creates a plain text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// ContentType returns the MIME type of rendered documents.
func (r *TextRenderer) ContentType() string {
	return textContentType
}

// Extension returns the file extension of rendered documents.
func (r *TextRenderer) Extension() string {
	return ".txt"
}

// Render writes the report document.
func (r *TextRenderer) Render(report *models.Report) ([]byte, error) {
	width := utf8.RuneCountInString(report.Separator)

	var buf bytes.Buffer
	writeCentered(&buf, report.Title, width)
	writeCentered(&buf, report.Separator, width)
	for _, line := range report.Lines {
		buf.WriteString(line.String())
		buf.WriteByte('\n')
	}
	writeCentered(&buf, report.Separator, width)
	writeCentered(&buf, report.Footer, width)

	return buf.Bytes(), nil
}

func writeCentered(buf *bytes.Buffer, s string, width int) {
	if pad := (width - utf8.RuneCountInString(s)) / 2; pad > 0 {
		buf.WriteString(strings.Repeat(" ", pad))
	}
	buf.WriteString(s)
	buf.WriteByte('\n')
}
