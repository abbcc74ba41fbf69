package docx

import (
	"encoding/xml"
	"strconv"
)

// stylesXML is the root of word/styles.xml.
type stylesXML struct {
	XMLName     xml.Name       `xml:"w:styles"`
	XmlnsW      string         `xml:"xmlns:w,attr"`
	DocDefaults docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleDefXML  `xml:"w:style"`
}

// docDefaultsXML carries document-wide run defaults; this is where the
// uniform output font and size live.
type docDefaultsXML struct {
	RunDefault runDefaultXML `xml:"w:rPrDefault"`
}

type runDefaultXML struct {
	Props runPropsXML `xml:"w:rPr"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Fonts  fontsXML `xml:"w:rFonts"`
	Size   valXML   `xml:"w:sz"`
	SizeCS valXML   `xml:"w:szCs"`
}

// fontsXML sets the font for every script class. EastAsia matters for CJK
// output: Word falls back to its own default for CJK runs unless it is set
// explicitly, even when ascii/hAnsi name a CJK-capable font.
type fontsXML struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

type valXML struct {
	Val string `xml:"w:val,attr"`
}

// styleDefXML defines a named style; only Normal is emitted.
type styleDefXML struct {
	Type    string `xml:"w:type,attr"`
	Default string `xml:"w:default,attr,omitempty"`
	StyleID string `xml:"w:styleId,attr"`
	Name    valXML `xml:"w:name"`
}

// buildStyles produces the styles part for the given font name and size in
// points. Word stores run sizes in half-points.
func buildStyles(fontName string, fontSizePt int) stylesXML {
	half := strconv.Itoa(fontSizePt * 2)
	return stylesXML{
		XmlnsW: nsW,
		DocDefaults: docDefaultsXML{
			RunDefault: runDefaultXML{
				Props: runPropsXML{
					Fonts:  fontsXML{ASCII: fontName, HAnsi: fontName, EastAsia: fontName, CS: fontName},
					Size:   valXML{Val: half},
					SizeCS: valXML{Val: half},
				},
			},
		},
		Styles: []styleDefXML{
			{Type: "paragraph", Default: "1", StyleID: "Normal", Name: valXML{Val: "Normal"}},
		},
	}
}
