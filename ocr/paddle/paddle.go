// Package paddle provides a recognition engine backed by the PaddleOCR
// command line tool. PaddleOCR ships as a Python package, so the engine
// shells out to its `paddleocr` entry point rather than binding to it.
package paddle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
)

// ErrPaddleNotFound is returned when the paddleocr command cannot be
// located. Installing it is `pip install paddleocr`.
var ErrPaddleNotFound = errors.New("paddleocr command not found")

// DefaultLanguage is PaddleOCR's model code for simplified Chinese, which
// also covers embedded Latin text.
const DefaultLanguage = "ch"

// Engine recognizes page images by invoking the paddleocr CLI per page.
type Engine struct {
	// Bin overrides the paddleocr command name or path.
	Bin string
}

// New constructs a Paddle engine using the paddleocr command from PATH.
func New() *Engine { return &Engine{} }

func (e *Engine) Name() string { return "paddle" }

func (e *Engine) binary() string {
	if e.Bin != "" {
		return e.Bin
	}
	return "paddleocr"
}

// Args builds the command line for one page image. PaddleOCR takes a single
// model language, so only the first requested language is passed through.
func (e *Engine) Args(in ocr.Input) []string {
	lang := DefaultLanguage
	if len(in.Languages) > 0 {
		lang = in.Languages[0]
	}
	return []string{
		"--image_dir", in.ImagePath,
		"--lang", lang,
		"--use_angle_cls", "true",
	}
}

// Recognize shells out to paddleocr for the page image named by the input
// and reassembles its detected lines into page text.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	bin, err := exec.LookPath(e.binary())
	if err != nil {
		return ocr.Result{}, fmt.Errorf("%w: %s", ErrPaddleNotFound, e.binary())
	}

	cmd := exec.CommandContext(ctx, bin, e.Args(in)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ocr.Result{}, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return ocr.Result{}, fmt.Errorf("paddleocr failed: %s", msg)
	}

	return ocr.Result{Page: in.Page, Text: ParseOutput(stdout.String())}, nil
}

// Detection tuples look like ('跨模态检索', 0.9871262) in paddleocr's log
// output, one per detected line.
var lineTuple = regexp.MustCompile(`\('((?:[^'\\]|\\.)*)',\s*[0-9.]+\)`)

// ParseOutput extracts the recognized line texts from paddleocr's stdout
// and joins them with newlines, in detection order.
func ParseOutput(out string) string {
	matches := lineTuple.FindAllStringSubmatch(out, -1)
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, unescape(m[1]))
	}
	return strings.Join(lines, "\n")
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\'`, `'`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
