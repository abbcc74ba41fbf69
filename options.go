package pdfocr2word

import "runtime"

// Mode selects the extraction strategy for a conversion run.
type Mode string

const (
	// ModeOCR rasterizes pages and runs a recognition engine over them.
	ModeOCR Mode = "ocr"
	// ModeText reads the PDF's embedded text layer directly, no OCR.
	ModeText Mode = "text"
	// ModeMac uses the native macOS Vision recognizer (darwin only).
	ModeMac Mode = "mac"
)

// EngineName selects the recognition engine used by ModeOCR.
type EngineName string

const (
	EngineTesseract EngineName = "tesseract"
	EnginePaddle    EngineName = "paddle"
)

// RunConfig holds configuration for a conversion run.
type RunConfig struct {
	mode   Mode
	engine EngineName

	// Recognition
	languages []string
	dpi       int
	workers   int

	// Output document
	fontName   string
	fontSizePt int

	// Formatting
	noFormat     bool
	removeTokens []string

	// External tools
	popplerPath string
}

// defaultConfig returns the default run configuration.
func defaultConfig() RunConfig {
	return RunConfig{
		mode:       ModeOCR,
		engine:     EngineTesseract,
		languages:  nil, // nil means the engine's default
		dpi:        300,
		workers:    runtime.NumCPU(),
		fontName:   "SimSun",
		fontSizePt: 12,
	}
}

// clone creates a deep copy of RunConfig.
func (c RunConfig) clone() RunConfig {
	newCfg := c

	if c.languages != nil {
		newCfg.languages = make([]string, len(c.languages))
		copy(newCfg.languages, c.languages)
	}
	if c.removeTokens != nil {
		newCfg.removeTokens = make([]string, len(c.removeTokens))
		copy(newCfg.removeTokens, c.removeTokens)
	}

	return newCfg
}
