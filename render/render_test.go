package render

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRenderer_Binary(t *testing.T) {
	if got := New("", 300).Binary(); got != "pdftoppm" {
		t.Errorf("Binary() = %q, want pdftoppm", got)
	}

	r := New(filepath.Join("/opt", "poppler", "bin"), 300)
	want := filepath.Join("/opt", "poppler", "bin", "pdftoppm")
	if got := r.Binary(); got != want {
		t.Errorf("Binary() = %q, want %q", got, want)
	}
}

func TestRenderer_Args(t *testing.T) {
	r := New("", 200)
	got := r.Args("in.pdf", "/tmp/x/page")
	want := []string{"-r", "200", "-png", "in.pdf", "/tmp/x/page"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestRenderer_DefaultDPI(t *testing.T) {
	if got := New("", 0).DPI; got != 300 {
		t.Errorf("default DPI = %d, want 300", got)
	}
	if got := New("", -5).DPI; got != 300 {
		t.Errorf("negative DPI = %d, want 300", got)
	}
}

func TestRenderAll_MissingBinary(t *testing.T) {
	r := New(t.TempDir(), 300) // empty dir: no pdftoppm inside
	_, err := r.RenderAll(context.Background(), "in.pdf", t.TempDir())
	if !errors.Is(err, ErrPopplerNotFound) {
		t.Errorf("RenderAll() error = %v, want ErrPopplerNotFound", err)
	}
}

func TestPageSuffix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"page-1.png", "1"},
		{"page-07.png", "07"},
		{"page-120.png", "120"},
		{"page.png", ""},
		{"page-1.ppm", ""},
	}

	for _, tt := range tests {
		m := pageSuffix.FindStringSubmatch(tt.name)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tt.want {
			t.Errorf("pageSuffix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
