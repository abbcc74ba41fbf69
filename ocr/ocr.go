// Package ocr defines the OCR engine contract used by the converter and
// runs page recognition across a bounded worker pool.
//
// Engines are pattern-matching black boxes: the Tesseract engine wraps
// gosseract, the Paddle engine shells out to the PaddleOCR command-line
// tool, and the Vision engine shells out to a macOS Vision helper. All of
// them take a rendered page image and return raw text; everything smarter
// than that lives in the reflow pipeline.
package ocr

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Input is one rendered page submitted for recognition.
type Input struct {
	// Page is the zero-based page index within the source PDF.
	Page int
	// ImagePath points at the rendered page image (PNG).
	ImagePath string
	// DPI carries the render resolution; engines that scale by physical
	// size use it. Zero means unknown.
	DPI int
	// Languages lists engine-specific language or model codes, in
	// preference order (e.g. "chi_sim" for Tesseract, "ch" for Paddle,
	// "zh-Hans" for Vision).
	Languages []string
}

// Result is the recognized text for one page.
type Result struct {
	// Page mirrors Input.Page.
	Page int
	// Text is the raw recognized text, whitespace-trimmed but otherwise
	// unprocessed.
	Text string
}

// Engine is the OCR provider contract: one page image in, raw text out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// RecognizePages runs engine over every input using up to workers
// concurrent goroutines (unbounded when workers <= 0). Results are returned
// in input order regardless of completion order. onPage, if non-nil, is
// called once with done == 0 before work starts and then once per completed
// page; it must be safe for concurrent use.
//
// The first engine error cancels the remaining pages and is returned
// annotated with its 1-based page number.
func RecognizePages(ctx context.Context, engine Engine, inputs []Input, workers int, onPage func(done, total int)) ([]Result, error) {
	total := len(inputs)
	if onPage != nil {
		onPage(0, total)
	}
	if total == 0 {
		return nil, nil
	}

	results := make([]Result, total)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, in := range inputs {
		g.Go(func() error {
			res, err := engine.Recognize(ctx, in)
			if err != nil {
				return fmt.Errorf("page %d: %s: %w", in.Page+1, engine.Name(), err)
			}
			results[i] = res
			if onPage != nil {
				onPage(int(done.Add(1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
