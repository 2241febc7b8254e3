package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"
)

type fakeEngine struct {
	texts []string
	calls int
	err   error
}

func (f *fakeEngine) Recognize(ctx context.Context, pageImage []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.texts[f.calls-1], nil
}

func fakeRasterizer(pages int) func([]byte) ([]image.Image, error) {
	return func([]byte) ([]image.Image, error) {
		images := make([]image.Image, pages)
		for i := range images {
			img := image.NewGray(image.Rect(0, 0, 4, 4))
			images[i] = img
		}
		return images, nil
	}
}

// not a real PDF, so the text-layer fast path bails and every page goes
// through the raster+OCR path
var scannedDoc = base64.StdEncoding.EncodeToString([]byte("%PDF-not-actually-parseable"))

func TestExtractPageMarkers(t *testing.T) {
	t.Parallel()

	const pages = 3
	engine := &fakeEngine{texts: []string{"Hemoglobin 13.5", "Cholesterol 180", "Glucose 95"}}
	e := NewExtractor(engine)
	e.rasterize = fakeRasterizer(pages)

	out, err := e.ExtractFromBase64(context.Background(), scannedDoc)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	for i := 1; i <= pages; i++ {
		marker := fmt.Sprintf("--- Page %d ---", i)
		if !strings.Contains(out, marker) {
			t.Fatalf("missing marker %q in:\n%s", marker, out)
		}
	}
	if got := strings.Count(out, "--- Page "); got != pages {
		t.Fatalf("expected %d page markers, got %d", pages, got)
	}

	// markers appear in ascending order
	last := -1
	for i := 1; i <= pages; i++ {
		idx := strings.Index(out, fmt.Sprintf("--- Page %d ---", i))
		if idx <= last {
			t.Fatalf("page %d marker out of order", i)
		}
		last = idx
	}

	if !strings.Contains(out, "Hemoglobin 13.5") {
		t.Fatalf("missing recognized text in:\n%s", out)
	}
}

func TestExtractRejectsBadBase64(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	e := NewExtractor(engine)

	_, err := e.ExtractFromBase64(context.Background(), "!!not-base64!!")
	if err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if !strings.Contains(err.Error(), "ocr extraction failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.calls != 0 {
		t.Fatalf("engine should not run on decode failure, got %d calls", engine.calls)
	}
}

func TestExtractAbortsWholeDocumentOnPageFailure(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{err: errors.New("engine crashed")}
	e := NewExtractor(engine)
	e.rasterize = fakeRasterizer(2)

	_, err := e.ExtractFromBase64(context.Background(), scannedDoc)
	if err == nil {
		t.Fatal("expected extraction to fail")
	}
	if !strings.Contains(err.Error(), "page 1") {
		t.Fatalf("expected failing page in error, got: %v", err)
	}
}

func TestJoinPagesEmptyPageKeepsMarker(t *testing.T) {
	t.Parallel()

	out := joinPages([]string{"first", "", "third"})
	if got := strings.Count(out, "--- Page "); got != 3 {
		t.Fatalf("expected 3 markers, got %d", got)
	}
}
