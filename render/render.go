// Package render rasterizes PDF pages to images using the poppler
// pdftoppm tool.
//
// Poppler is treated as an external collaborator: this package builds the
// command line, runs the binary, and collects the per-page image files it
// produces. The poppler installation directory is configurable for systems
// (typically Windows) where the binaries are not on PATH.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// ErrPopplerNotFound is returned when the pdftoppm binary cannot be located.
var ErrPopplerNotFound = errors.New("pdftoppm not found; install poppler-utils or set the poppler path")

// PageImage is one rendered page on disk.
type PageImage struct {
	// Index is the zero-based page index within the source PDF.
	Index int
	// Path is the location of the rendered PNG file.
	Path string
}

// Renderer runs pdftoppm with a fixed resolution.
type Renderer struct {
	// PopplerPath is the directory holding the poppler binaries.
	// Empty means resolve pdftoppm via PATH.
	PopplerPath string
	// DPI is the render resolution. Higher is sharper and slower.
	DPI int
}

// New returns a renderer. A dpi of 0 falls back to 300, the customary
// resolution for OCR input.
func New(popplerPath string, dpi int) *Renderer {
	if dpi <= 0 {
		dpi = 300
	}
	return &Renderer{PopplerPath: popplerPath, DPI: dpi}
}

// Binary returns the pdftoppm invocation path.
func (r *Renderer) Binary() string {
	if r.PopplerPath == "" {
		return "pdftoppm"
	}
	return filepath.Join(r.PopplerPath, "pdftoppm")
}

// Args builds the pdftoppm argument list for rendering every page of
// pdfPath as PNG files named prefix-<page>.png.
func (r *Renderer) Args(pdfPath, prefix string) []string {
	return []string{
		"-r", strconv.Itoa(r.DPI),
		"-png",
		pdfPath,
		prefix,
	}
}

var pageSuffix = regexp.MustCompile(`-(\d+)\.png$`)

// RenderAll rasterizes every page of pdfPath into outDir and returns the
// rendered pages in page order. The caller owns outDir and its cleanup.
func (r *Renderer) RenderAll(ctx context.Context, pdfPath, outDir string) ([]PageImage, error) {
	bin := r.Binary()
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPopplerNotFound, err)
	}

	prefix := filepath.Join(outDir, "page")
	cmd := exec.CommandContext(ctx, bin, r.Args(pdfPath, prefix)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("pdftoppm failed for %s: %s: %w", pdfPath, bytes.TrimSpace(stderr.Bytes()), err)
		}
		return nil, fmt.Errorf("pdftoppm failed for %s: %w", pdfPath, err)
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("collect rendered pages: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}

	pages := make([]PageImage, 0, len(matches))
	for _, m := range matches {
		num := pageSuffix.FindStringSubmatch(m)
		if num == nil {
			continue
		}
		// pdftoppm numbers pages from 1, possibly zero-padded.
		n, err := strconv.Atoi(num[1])
		if err != nil || n < 1 {
			continue
		}
		pages = append(pages, PageImage{Index: n - 1, Path: m})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Index < pages[j].Index })
	return pages, nil
}
