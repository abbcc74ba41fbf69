// Package textlayer extracts the embedded text layer from a PDF without OCR.
//
// It is the fast path for PDFs that were born digital: selectable text is
// read per page and handed to the reflow pipeline as-is. Pages without a
// text layer (scanned pages) yield empty placeholders so page numbering in
// the output document stays aligned with the source.
package textlayer

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPages reads the text layer of every page of the PDF at path and
// returns one raw string per page, in page order. Rows of text are joined
// with newlines so downstream reflow sees the original line structure.
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)

	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}

	return pages, nil
}

// pageText extracts one page, preferring row-grouped extraction (which
// preserves line breaks) and falling back to plain text when row analysis
// fails on malformed content streams.
func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var sb strings.Builder
		for i, row := range rows {
			if i > 0 {
				sb.WriteString("\n")
			}
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
		}
		return sb.String()
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
