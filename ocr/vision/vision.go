// Package vision provides a recognition engine backed by the macOS Vision
// framework. Vision has no C API reachable from Go, so the engine drives a
// small helper binary (ocrit) that wraps VNRecognizeTextRequest and prints
// the recognized text.
package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
)

var (
	// ErrUnsupportedPlatform is returned on anything but macOS.
	ErrUnsupportedPlatform = errors.New("vision recognition requires macOS")

	// ErrHelperNotFound is returned when the helper binary is missing.
	// Installing it is `brew install ocrit`.
	ErrHelperNotFound = errors.New("ocrit helper not found")
)

// DefaultLanguages matches Vision's recognition language hints for mixed
// simplified Chinese and English pages.
var DefaultLanguages = []string{"zh-Hans", "en-US"}

// Engine recognizes page images through the Vision helper binary.
type Engine struct {
	// Bin overrides the helper command name or path.
	Bin string

	goos string
}

// New constructs a Vision engine using the ocrit command from PATH.
func New() *Engine { return &Engine{goos: runtime.GOOS} }

func (e *Engine) Name() string { return "vision" }

func (e *Engine) binary() string {
	if e.Bin != "" {
		return e.Bin
	}
	return "ocrit"
}

// Args builds the helper command line for one page image. Languages use
// BCP 47 tags, each passed with its own -l flag.
func (e *Engine) Args(in ocr.Input) []string {
	langs := in.Languages
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	args := []string{in.ImagePath}
	for _, l := range langs {
		args = append(args, "-l", l)
	}
	return args
}

// Recognize runs the Vision helper over the page image named by the input.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	goos := e.goos
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos != "darwin" {
		return ocr.Result{}, ErrUnsupportedPlatform
	}

	bin, err := exec.LookPath(e.binary())
	if err != nil {
		return ocr.Result{}, fmt.Errorf("%w: %s", ErrHelperNotFound, e.binary())
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
		return ocr.Result{}, fmt.Errorf("vision helper failed: %s", msg)
	}

	return ocr.Result{Page: in.Page, Text: strings.TrimRight(stdout.String(), "\n")}, nil
}
