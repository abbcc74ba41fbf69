// Package docx writes minimal Word (.docx) documents.
//
// A .docx file is a ZIP archive of XML parts. This writer emits the smallest
// set of parts Word accepts: the content-type manifest, package and document
// relationships, core properties, a styles part carrying the uniform output
// font, and the document body itself. It deliberately supports nothing but
// plain paragraphs and page breaks; this tool's output has a uniform font and
// no structure beyond paragraph order.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	relTypeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"

	ctDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctCoreProps = "application/vnd.openxmlformats-package.core-properties+xml"
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML       = "application/xml"
)

// Writer accumulates paragraphs and serializes them as a .docx file.
// The zero value is not usable; construct with NewWriter.
type Writer struct {
	fontName   string
	fontSizePt int
	creator    string
	paragraphs []paragraphXML
}

// NewWriter creates a document writer with a uniform font applied to the
// whole document (both Western and East Asian scripts).
func NewWriter(fontName string, fontSizePt int) *Writer {
	return &Writer{
		fontName:   fontName,
		fontSizePt: fontSizePt,
		creator:    "pdfOcr2Word",
	}
}

// AddParagraph appends one paragraph of plain text. An empty string produces
// an empty paragraph, which keeps placeholder pages visible in the output.
func (w *Writer) AddParagraph(text string) {
	para := paragraphXML{}
	if text != "" {
		t := &textXML{Value: text}
		if strings.TrimSpace(text) != text {
			t.Space = "preserve"
		}
		para.Runs = []runXML{{Text: t}}
	}
	w.paragraphs = append(w.paragraphs, para)
}

// AddParagraphs appends each string as its own paragraph. An empty slice
// adds a single empty paragraph so empty pages keep their position.
func (w *Writer) AddParagraphs(paragraphs []string) {
	if len(paragraphs) == 0 {
		w.AddParagraph("")
		return
	}
	for _, p := range paragraphs {
		w.AddParagraph(p)
	}
}

// AddPageBreak appends a paragraph containing a forced page break.
func (w *Writer) AddPageBreak() {
	w.paragraphs = append(w.paragraphs, paragraphXML{
		Runs: []runXML{{Break: &breakXML{Type: "page"}}},
	})
}

// ParagraphCount returns the number of body paragraphs added so far,
// including page-break paragraphs.
func (w *Writer) ParagraphCount() int {
	return len(w.paragraphs)
}

// Save writes the document to path. The caller is responsible for choosing
// the final filename; no extension handling happens here.
func (w *Writer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := w.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes the document as a ZIP archive to out.
func (w *Writer) Write(out io.Writer) error {
	zw := zip.NewWriter(out)

	parts := []struct {
		name string
		doc  any
	}{
		{"[Content_Types].xml", w.contentTypes()},
		{"_rels/.rels", w.packageRels()},
		{"word/_rels/document.xml.rels", w.documentRels()},
		{"docProps/core.xml", w.coreProps()},
		{"word/styles.xml", buildStyles(w.fontName, w.fontSizePt)},
		{"word/document.xml", w.document()},
	}

	for _, part := range parts {
		if err := writeXMLPart(zw, part.name, part.doc); err != nil {
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func (w *Writer) document() documentXML {
	return documentXML{
		XmlnsW: nsW,
		XmlnsR: nsR,
		Body: bodyXML{
			Paragraphs: w.paragraphs,
			SectPr: &sectPrXML{
				// A4 portrait with one-inch top/bottom and 1.25in side margins.
				PageSize: pageSizeXML{W: "11906", H: "16838"},
				PageMargin: pageMarginXML{
					Top: "1440", Right: "1800", Bottom: "1440", Left: "1800",
					Header: "851", Footer: "992",
				},
			},
		},
	}
}

func (w *Writer) contentTypes() contentTypesXML {
	return contentTypesXML{
		Xmlns: nsCT,
		Defaults: []typeDefaultXML{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []typeOverrideXML{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		},
	}
}

func (w *Writer) packageRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRL,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
		},
	}
}

func (w *Writer) documentRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRL,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
		},
	}
}

func (w *Writer) coreProps() corePropsXML {
	return corePropsXML{
		XmlnsCP: nsCP,
		XmlnsDC: nsDC,
		Creator: w.creator,
	}
}

// writeXMLPart marshals doc into the named archive entry with an XML
// declaration, the way Word emits its own parts.
func writeXMLPart(zw *zip.Writer, name string, doc any) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
