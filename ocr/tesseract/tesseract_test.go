package tesseract

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Excalibur9527/pdfOcr2Word/ocr"
)

func TestEngineName(t *testing.T) {
	if got := New().Name(); got != "tesseract" {
		t.Errorf("Name() = %q, want %q", got, "tesseract")
	}
}

func TestMaxImageWidth(t *testing.T) {
	tests := []struct {
		set  int
		want int
	}{
		{0, DefaultMaxImageWidth},
		{-1, 0},
		{2500, 2500},
	}
	for _, tt := range tests {
		e := &Engine{MaxImageWidth: tt.set}
		if got := e.maxImageWidth(); got != tt.want {
			t.Errorf("maxImageWidth() with %d = %d, want %d", tt.set, got, tt.want)
		}
	}
}

func TestRecognize_MissingImage(t *testing.T) {
	_, err := New().Recognize(context.Background(), ocr.Input{ImagePath: "no-such-image.png"})
	if err == nil {
		t.Fatal("expected an error for a missing page image")
	}
}

func TestRecognize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Recognize(ctx, ocr.Input{ImagePath: "ignored.png"}); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// TestRecognize_English needs a working Tesseract install with English
// language data; it is skipped everywhere else.
func TestRecognize_English(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}

	imgPath := filepath.Join(t.TempDir(), "page-1.png")
	writeTextImage(t, imgPath)

	engine := New()
	res, err := engine.Recognize(context.Background(), ocr.Input{
		Page:      0,
		ImagePath: imgPath,
		DPI:       150,
		Languages: []string{"eng"},
	})
	if err != nil {
		t.Fatalf("Recognize() error: %v", err)
	}
	if res.Page != 0 {
		t.Errorf("result page = %d, want 0", res.Page)
	}
}

// writeTextImage renders a plain white page with a black bar, enough for
// Tesseract to run without crashing even if it reads no text from it.
func writeTextImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 600, 200))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(50, 90, 550, 110), image.NewUniform(color.Black), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}
