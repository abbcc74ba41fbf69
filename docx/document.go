package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCT = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRL = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsDC = "http://purl.org/dc/elements/1.1/"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
)

// documentXML is the root of word/document.xml. Element names carry the "w:"
// prefix literally; encoding/xml emits prefixed names verbatim, which keeps
// the generated part readable by Word without a namespace-rewriting layer.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML holds the document body: a flat list of paragraphs followed by the
// final section properties.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
	SectPr     *sectPrXML     `xml:"w:sectPr"`
}

// paragraphXML represents a paragraph (<w:p>).
type paragraphXML struct {
	Runs []runXML `xml:"w:r"`
}

// runXML represents a text run (<w:r>). A run carries either text content or
// a break; nil fields are omitted from the output.
type runXML struct {
	Break *breakXML `xml:"w:br"`
	Text  *textXML  `xml:"w:t"`
}

// textXML represents run text (<w:t>). Space is set to "preserve" whenever
// the value has leading or trailing whitespace.
type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// breakXML represents a break (<w:br>); Type "page" forces a page break.
type breakXML struct {
	Type string `xml:"w:type,attr,omitempty"`
}

// sectPrXML carries the trailing section properties (<w:sectPr>) with an A4
// page size and default margins, matching what Word itself emits for a plain
// document.
type sectPrXML struct {
	PageSize   pageSizeXML   `xml:"w:pgSz"`
	PageMargin pageMarginXML `xml:"w:pgMar"`
}

// pageSizeXML represents page dimensions in twips.
type pageSizeXML struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

// pageMarginXML represents page margins in twips.
type pageMarginXML struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
}

// contentTypesXML is the root of [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	Xmlns     string            `xml:"xmlns,attr"`
	Defaults  []typeDefaultXML  `xml:"Default"`
	Overrides []typeOverrideXML `xml:"Override"`
}

type typeDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type typeOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsXML is the root of a .rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropsXML is the root of docProps/core.xml.
type corePropsXML struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	Creator string   `xml:"dc:creator"`
	Title   string   `xml:"dc:title,omitempty"`
}
