package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract runs a local tesseract engine through gosseract.
type Tesseract struct {
	language string
}

var _ Engine = (*Tesseract)(nil)

func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{language: language}
}

// Recognize extracts text from a single binarized page image. A fresh
// client per page keeps the cgo handle out of shared state.
func (t *Tesseract) Recognize(ctx context.Context, pageImage []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("set ocr language: %w", err)
	}
	if err := client.SetImageFromBytes(pageImage); err != nil {
		return "", fmt.Errorf("load page image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize page: %w", err)
	}
	return text, nil
}
