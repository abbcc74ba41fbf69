// Package tesseract provides the Tesseract-backed recognition engine built
// on the gosseract client. It is the default engine for scanned documents
// and needs a local Tesseract installation with the requested language data.
package tesseract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
)

// DefaultLanguages is used when the input does not name any. Simplified
// Chinese implies the English model for mixed-script pages, so it is a
// workable default for both.
var DefaultLanguages = []string{"chi_sim"}

// DefaultMaxImageWidth caps page renders before they reach Tesseract.
// 300 DPI A4 pages come in around 2500px wide; anything past this limit
// buys runtime without buying accuracy.
const DefaultMaxImageWidth = 4000

// Engine recognizes page images with Tesseract via gosseract.
type Engine struct {
	// MaxImageWidth bounds the pixel width fed to Tesseract. Wider images
	// are downscaled proportionally first. Zero applies the default,
	// negative disables scaling.
	MaxImageWidth int

	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract engine with default settings.
func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize runs Tesseract over the page image named by the input. Each call
// uses a fresh client so concurrent pages never share native state.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	select {
	case <-ctx.Done():
		return ocr.Result{}, ctx.Err()
	default:
	}

	data, err := os.ReadFile(in.ImagePath)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("read page image: %w", err)
	}
	data, err = ocr.DownscalePNG(data, e.maxImageWidth())
	if err != nil {
		return ocr.Result{}, fmt.Errorf("scale page image: %w", err)
	}

	factory := e.clientFactory
	if factory == nil {
		factory = gosseract.NewClient
	}
	c := factory()
	defer c.Close()

	langs := in.Languages
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	if err := c.SetLanguage(langs...); err != nil {
		return ocr.Result{}, fmt.Errorf("set languages: %w", err)
	}
	if err := c.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return ocr.Result{}, fmt.Errorf("set page segmentation mode: %w", err)
	}
	if in.DPI > 0 {
		if err := c.SetVariable("user_defined_dpi", fmt.Sprint(in.DPI)); err != nil {
			return ocr.Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImageFromBytes(data); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return ocr.Result{Page: in.Page, Text: strings.TrimRight(text, "\n")}, nil
}

func (e *Engine) maxImageWidth() int {
	switch {
	case e.MaxImageWidth < 0:
		return 0
	case e.MaxImageWidth == 0:
		return DefaultMaxImageWidth
	default:
		return e.MaxImageWidth
	}
}
