package pdfocr2word

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
)

// buildTextPDF assembles a minimal PDF with one text line per page,
// computing xref offsets while writing.
func buildTextPDF(pageTexts []string) []byte {
	var buf bytes.Buffer
	var offsets []int

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	n := len(pageTexts)
	kids := make([]string, n)
	for i := 0; i < n; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	addObj("<< /Type /Catalog /Pages 2 0 R >>")
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	addObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		addObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))

		escaped := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(text)
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escaped)
		addObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)

	return buf.Bytes()
}

func writeTextPDF(t *testing.T, pageTexts []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := os.WriteFile(path, buildTextPDF(pageTexts), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// readDocumentXML pulls word/document.xml out of a written .docx.
func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestConvert_TextMode(t *testing.T) {
	pdfPath := writeTextPDF(t, []string{"Hello world.", "Second page."})
	outPath := filepath.Join(t.TempDir(), "out")

	var calls []int
	got, err := Open(pdfPath).
		Mode(ModeText).
		WithProgress(func(done, total int) { calls = append(calls, done) }).
		Convert(context.Background(), outPath)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.HasSuffix(got, "out.docx") {
		t.Errorf("output path = %q, want a .docx suffix", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("output path %q is not absolute", got)
	}

	doc := readDocumentXML(t, got)
	if !strings.Contains(strings.Join(strings.Fields(doc), ""), "Helloworld.") {
		t.Errorf("document.xml missing page 1 text:\n%s", doc)
	}
	if breaks := strings.Count(doc, `w:type="page"`); breaks != 1 {
		t.Errorf("got %d page breaks, want 1 between 2 pages", breaks)
	}

	if len(calls) != 3 || calls[0] != 0 || calls[2] != 2 {
		t.Errorf("progress calls = %v, want [0 1 2]", calls)
	}
}

func TestConvert_MissingInput(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.pdf")).
		Mode(ModeText).
		Convert(context.Background(), "out.docx")
	if err == nil || !strings.Contains(err.Error(), "input file") {
		t.Errorf("error = %v, want an input file error", err)
	}
}

func TestConvert_RejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("plain text pretending"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path).Mode(ModeText).Convert(context.Background(), "out.docx")
	if err == nil || !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("error = %v, want a not-a-PDF error", err)
	}
}

func TestConvert_RemoveTokens(t *testing.T) {
	pdfPath := writeTextPDF(t, []string{"CONFIDENTIAL Hello world."})
	outPath := filepath.Join(t.TempDir(), "clean.docx")

	got, err := Open(pdfPath).
		Mode(ModeText).
		RemoveTokens("CONFIDENTIAL").
		Convert(context.Background(), outPath)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if doc := readDocumentXML(t, got); strings.Contains(doc, "CONFIDENTIAL") {
		t.Error("removed token still present in document")
	}
}

func TestSplitRaw(t *testing.T) {
	if got := splitRaw("a\nb\n"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitRaw() = %v", got)
	}
	if got := splitRaw(""); got != nil {
		t.Errorf("splitRaw(\"\") = %v, want nil", got)
	}
}

// TestConvert_OCRMode exercises the rasterize-then-recognize path with a
// stand-in engine; it needs poppler's pdftoppm on PATH to render pages.
func TestConvert_OCRMode(t *testing.T) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		t.Skip("pdftoppm not installed in PATH")
	}

	pdfPath := writeTextPDF(t, []string{"ignored", "ignored"})
	outPath := filepath.Join(t.TempDir(), "ocr.docx")

	engine := pageStampEngine{}
	got, err := Open(pdfPath).
		Workers(2).
		WithOCREngine(engine).
		Convert(context.Background(), outPath)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	doc := readDocumentXML(t, got)
	first := strings.Index(doc, "stamp page 1")
	second := strings.Index(doc, "stamp page 2")
	if first < 0 || second < 0 || second < first {
		t.Errorf("pages missing or out of order in document:\n%s", doc)
	}
}

type pageStampEngine struct{}

func (pageStampEngine) Name() string { return "stamp" }

func (pageStampEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if _, err := os.Stat(in.ImagePath); err != nil {
		return ocr.Result{}, fmt.Errorf("page image missing: %w", err)
	}
	return ocr.Result{Page: in.Page, Text: fmt.Sprintf("stamp page %d", in.Page+1)}, nil
}
