// Package pdfocr2word converts PDF documents into Word (.docx) documents.
//
// Three extraction strategies are supported: OCR over rasterized pages
// (Tesseract or PaddleOCR), direct text-layer extraction, and the native
// macOS Vision recognizer. Extracted text runs through a reflow pass that
// reconstructs paragraphs from line-broken page text before the document
// is assembled.
//
// Basic usage:
//
//	out, err := pdfocr2word.Open("scan.pdf").Convert(ctx, "scan.docx")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	out, err := pdfocr2word.Open("scan.pdf").
//	    Mode(pdfocr2word.ModeOCR).
//	    Engine(pdfocr2word.EnginePaddle).
//	    DPI(200).
//	    Workers(4).
//	    Convert(ctx, "scan.docx")
package pdfocr2word

import (
	"fmt"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
	"github.com/Excalibur9527/pdfOcr2Word/progress"
)

// Converter provides a fluent interface for configuring and running a
// PDF to Word conversion. Each configuration method returns a new
// Converter instance, making chains safe to fork and reuse.
type Converter struct {
	inputPath string

	cfg RunConfig

	// Overrides
	customEngine ocr.Engine
	progressFn   progress.Func

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a conversion of the given PDF file and returns a Converter
// for fluent configuration. The file is not touched until Convert runs.
//
// Example:
//
//	out, err := pdfocr2word.Open("scan.pdf").Convert(ctx, "out.docx")
func Open(inputPath string) *Converter {
	return &Converter{
		inputPath: inputPath,
		cfg:       defaultConfig(),
	}
}

// clone creates a shallow copy of the Converter with a deep copy of the
// run configuration.
func (c *Converter) clone() *Converter {
	return &Converter{
		inputPath:    c.inputPath,
		cfg:          c.cfg.clone(),
		customEngine: c.customEngine,
		progressFn:   c.progressFn,
		err:          c.err,
	}
}

// Mode selects the extraction strategy: ModeOCR, ModeText, or ModeMac.
func (c *Converter) Mode(m Mode) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	switch m {
	case ModeOCR, ModeText, ModeMac:
		newConv.cfg.mode = m
	default:
		newConv.err = fmt.Errorf("unknown mode %q (want ocr, text, or mac)", m)
	}
	return newConv
}

// Engine selects the recognition engine used by ModeOCR: EngineTesseract
// or EnginePaddle. Ignored by the other modes.
func (c *Converter) Engine(e EngineName) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	switch e {
	case EngineTesseract, EnginePaddle:
		newConv.cfg.engine = e
	default:
		newConv.err = fmt.Errorf("unknown engine %q (want tesseract or paddle)", e)
	}
	return newConv
}

// Language sets the recognition language hints, in the engine's own
// notation (Tesseract "chi_sim", Paddle "ch", Vision "zh-Hans"). Unset,
// each engine applies its own default.
func (c *Converter) Language(langs ...string) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.cfg.languages = append([]string(nil), langs...)
	return newConv
}

// DPI sets the rasterization resolution for the OCR modes. The default
// is 300.
func (c *Converter) DPI(dpi int) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	if dpi <= 0 {
		newConv.err = fmt.Errorf("dpi must be positive, got %d", dpi)
		return newConv
	}
	newConv.cfg.dpi = dpi
	return newConv
}

// Workers bounds how many pages are recognized concurrently. Zero means
// unbounded. The default is the number of CPUs.
func (c *Converter) Workers(n int) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	if n < 0 {
		newConv.err = fmt.Errorf("workers must be >= 0, got %d", n)
		return newConv
	}
	newConv.cfg.workers = n
	return newConv
}

// Font sets the uniform font applied to the output document. The default
// is SimSun at 12pt.
func (c *Converter) Font(name string, sizePt int) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	if name == "" {
		newConv.err = fmt.Errorf("font name must not be empty")
		return newConv
	}
	if sizePt <= 0 {
		newConv.err = fmt.Errorf("font size must be positive, got %d", sizePt)
		return newConv
	}
	newConv.cfg.fontName = name
	newConv.cfg.fontSizePt = sizePt
	return newConv
}

// RemoveTokens registers literal tokens (recurring headers, footers,
// watermark fragments) stripped from extracted text before reflow.
func (c *Converter) RemoveTokens(tokens ...string) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.cfg.removeTokens = append(newConv.cfg.removeTokens, tokens...)
	return newConv
}

// NoFormat disables the reflow pass; extracted page text is written to the
// document as-is.
func (c *Converter) NoFormat() *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.cfg.noFormat = true
	return newConv
}

// PopplerPath points at the directory holding poppler's pdftoppm binary,
// for installs that are not on PATH.
func (c *Converter) PopplerPath(dir string) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.cfg.popplerPath = dir
	return newConv
}

// WithProgress registers a callback fired once before recognition starts
// (done=0) and after each completed page. Callbacks may arrive from
// worker goroutines.
func (c *Converter) WithProgress(fn progress.Func) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.progressFn = fn
	return newConv
}

// WithOCREngine substitutes a custom recognition engine for the built-in
// ones. It takes precedence over Engine in the OCR modes.
func (c *Converter) WithOCREngine(engine ocr.Engine) *Converter {
	newConv := c.clone()
	if newConv.err != nil {
		return newConv
	}
	newConv.customEngine = engine
	return newConv
}

// Err returns the accumulated configuration error, if any, without
// running the conversion.
func (c *Converter) Err() error {
	return c.err
}
