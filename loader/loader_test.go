package loader_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/born-ml/tensorview/loader"
	"github.com/born-ml/tensorview/tensor"
)

// TestLoaderAPI verifies Write, Parse and View through the public API.
func TestLoaderAPI(t *testing.T) {
	view := tensor.NewView(tensor.NewShape(tensor.I32, 2), make([]byte, 8))
	values, err := view.I32()
	if err != nil {
		t.Fatalf("I32 failed: %v", err)
	}
	values[0], values[1] = -3, 9

	var buf bytes.Buffer
	if err := loader.Write(&buf, []loader.NamedView{{Name: "x", View: view}}, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := loader.Parse(buf.Bytes(), loader.Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer f.Close()

	if got := f.Metadata()["k"]; got != "v" {
		t.Errorf("Metadata()[k] = %q, want v", got)
	}

	loaded, err := f.View("x")
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got := loaded.Shape().String(); got != "i32[2]" {
		t.Errorf("Shape() = %s, want i32[2]", got)
	}
	got, err := loaded.I32()
	if err != nil {
		t.Fatalf("I32 failed: %v", err)
	}
	if got[0] != -3 || got[1] != 9 {
		t.Errorf("I32() = %v, want [-3 9]", got)
	}

	if _, err := f.View("missing"); !errors.Is(err, loader.ErrTensorNotFound) {
		t.Errorf("expected ErrTensorNotFound, got %v", err)
	}
	if _, err := loaded.F32(); !errors.Is(err, tensor.ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}
