package pdfocr2word

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/Excalibur9527/pdfOcr2Word/docx"
	"github.com/Excalibur9527/pdfOcr2Word/format"
	"github.com/Excalibur9527/pdfOcr2Word/ocr"
	"github.com/Excalibur9527/pdfOcr2Word/ocr/paddle"
	"github.com/Excalibur9527/pdfOcr2Word/ocr/tesseract"
	"github.com/Excalibur9527/pdfOcr2Word/ocr/vision"
	"github.com/Excalibur9527/pdfOcr2Word/reflow"
	"github.com/Excalibur9527/pdfOcr2Word/render"
	"github.com/Excalibur9527/pdfOcr2Word/textlayer"
)

// Convert runs the configured pipeline and writes the result to outputPath.
// A missing .docx extension is appended. It returns the absolute path of
// the written document.
func (c *Converter) Convert(ctx context.Context, outputPath string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.inputPath == "" {
		return "", fmt.Errorf("no input file specified")
	}
	if outputPath == "" {
		return "", fmt.Errorf("no output file specified")
	}

	if err := c.checkInput(); err != nil {
		return "", err
	}

	var (
		pages []string
		err   error
	)
	switch c.cfg.mode {
	case ModeText:
		pages, err = c.extractTextLayer()
	default:
		pages, err = c.recognizePages(ctx)
	}
	if err != nil {
		return "", err
	}

	return c.writeDocument(pages, outputPath)
}

// checkInput verifies the input file exists and really is a PDF. Detection
// goes by magic bytes, not extension: a text file renamed to .pdf fails
// here with a clear message instead of confusing an engine downstream.
func (c *Converter) checkInput() error {
	if _, err := os.Stat(c.inputPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	f, err := os.Open(c.inputPath)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	defer f.Close()

	magic := make([]byte, 8)
	n, _ := f.Read(magic)
	if got := format.DetectFromMagic(magic[:n]); got != format.PDF {
		return fmt.Errorf("input %s is not a PDF (detected %s)", c.inputPath, got)
	}
	return nil
}

// extractTextLayer reads the embedded text layer, one string per page.
// Fast enough that it runs single-threaded.
func (c *Converter) extractTextLayer() ([]string, error) {
	pages, err := textlayer.ExtractPages(c.inputPath)
	if err != nil {
		return nil, fmt.Errorf("extract text layer: %w", err)
	}
	if c.progressFn != nil {
		c.progressFn(0, len(pages))
		for i := range pages {
			c.progressFn(i+1, len(pages))
		}
	}
	return pages, nil
}

// recognizePages rasterizes every page and runs the recognition engine
// over the images concurrently, returning raw text in page order.
func (c *Converter) recognizePages(ctx context.Context) ([]string, error) {
	pageCount, err := api.PageCountFile(c.inputPath)
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%s has no pages", c.inputPath)
	}

	tmpDir, err := os.MkdirTemp("", "pdfocr2word-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	renderer := render.New(c.cfg.popplerPath, c.cfg.dpi)
	images, err := renderer.RenderAll(ctx, c.inputPath, tmpDir)
	if err != nil {
		return nil, fmt.Errorf("render pages: %w", err)
	}
	if len(images) != pageCount {
		return nil, fmt.Errorf("rendered %d images for %d pages", len(images), pageCount)
	}

	inputs := make([]ocr.Input, len(images))
	for i, img := range images {
		inputs[i] = ocr.Input{
			Page:      img.Index,
			ImagePath: img.Path,
			DPI:       c.cfg.dpi,
			Languages: c.cfg.languages,
		}
	}

	results, err := ocr.RecognizePages(ctx, c.ocrEngine(), inputs, c.cfg.workers, c.progressFn)
	if err != nil {
		return nil, err
	}

	pages := make([]string, len(results))
	for i, res := range results {
		pages[i] = res.Text
	}
	return pages, nil
}

// ocrEngine resolves the recognition engine for the run: a custom engine
// wins, ModeMac always means Vision, otherwise the configured engine.
func (c *Converter) ocrEngine() ocr.Engine {
	if c.customEngine != nil {
		return c.customEngine
	}
	if c.cfg.mode == ModeMac {
		return vision.New()
	}
	if c.cfg.engine == EnginePaddle {
		return paddle.New()
	}
	return tesseract.New()
}

// writeDocument reflows the page texts (unless disabled) and assembles
// the .docx, with a page break between document pages but not after the
// last one.
func (c *Converter) writeDocument(pages []string, outputPath string) (string, error) {
	opts := reflow.Options{RemoveTokens: c.cfg.removeTokens}

	w := docx.NewWriter(c.cfg.fontName, c.cfg.fontSizePt)
	for i, page := range pages {
		if i > 0 {
			w.AddPageBreak()
		}
		if c.cfg.noFormat {
			raw := reflow.RemoveTokens(page, c.cfg.removeTokens)
			w.AddParagraphs(splitRaw(raw))
			continue
		}
		w.AddParagraphs(reflow.Page(page, opts))
	}

	outputPath = ensureDocxExt(outputPath)
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := w.Save(outputPath); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}
	return abs, nil
}

// splitRaw turns unformatted page text into one paragraph per line,
// preserving the extracted line structure.
func splitRaw(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func ensureDocxExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return path
	}
	return path + ".docx"
}
