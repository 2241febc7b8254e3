// Package ocr turns uploaded PDF lab reports into plain text. Pages with an
// embedded text layer are read directly; scanned pages are rasterized,
// binarized and run through the OCR engine.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Engine recognizes text in a binarized page image (PNG bytes).
type Engine interface {
	Recognize(ctx context.Context, pageImage []byte) (string, error)
}

type Extractor struct {
	engine Engine

	// overridable in tests to avoid the cgo rasterizer
	rasterize func(pdfBytes []byte) ([]image.Image, error)
}

func NewExtractor(engine Engine) *Extractor {
	return &Extractor{
		engine:    engine,
		rasterize: rasterizePDF,
	}
}

// ExtractFromBase64 decodes a base64 PDF and returns one text section per
// page, each prefixed with a 1-based page header. Any failure aborts the
// whole document; there is no per-page recovery.
func (e *Extractor) ExtractFromBase64(ctx context.Context, pdfBase64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(pdfBase64))
	if err != nil {
		return "", fmt.Errorf("ocr extraction failed: decode document: %w", err)
	}
	return e.extract(ctx, raw)
}

func (e *Extractor) extract(ctx context.Context, raw []byte) (string, error) {
	pages := textLayerPages(raw)

	var images []image.Image
	if len(pages) == 0 {
		var err error
		images, err = e.rasterize(raw)
		if err != nil {
			return "", fmt.Errorf("ocr extraction failed: rasterize document: %w", err)
		}
		if len(images) == 0 {
			return "", fmt.Errorf("ocr extraction failed: document has no pages")
		}
		pages = make([]string, len(images))
	}

	for i, text := range pages {
		if strings.TrimSpace(text) != "" {
			continue
		}
		if images == nil {
			var err error
			images, err = e.rasterize(raw)
			if err != nil {
				return "", fmt.Errorf("ocr extraction failed: rasterize document: %w", err)
			}
		}
		if i >= len(images) {
			continue
		}
		recognized, err := e.recognizePage(ctx, images[i])
		if err != nil {
			return "", fmt.Errorf("ocr extraction failed: page %d: %w", i+1, err)
		}
		pages[i] = recognized
	}

	return joinPages(pages), nil
}

func (e *Extractor) recognizePage(ctx context.Context, img image.Image) (string, error) {
	binarized := Binarize(img)
	var buf bytes.Buffer
	if err := png.Encode(&buf, binarized); err != nil {
		return "", fmt.Errorf("encode page image: %w", err)
	}
	return e.engine.Recognize(ctx, buf.Bytes())
}

// textLayerPages reads the embedded text layer, one entry per page. Empty
// entries mark pages that need OCR. A nil result means the whole document
// goes through the raster path.
func textLayerPages(raw []byte) (pages []string) {
	// ledongthuc/pdf panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			pages = nil
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil
	}

	total := reader.NumPage()
	if total == 0 {
		return nil
	}

	pages = make([]string, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i-1] = strings.TrimSpace(text)
	}
	return pages
}

// joinPages assembles per-page text into the stored blob, one header per
// page in ascending order.
func joinPages(pages []string) string {
	sections := make([]string, 0, len(pages))
	for i, text := range pages {
		sections = append(sections, fmt.Sprintf("--- Page %d ---\n%s", i+1, text))
	}
	return strings.Join(sections, "\n")
}
