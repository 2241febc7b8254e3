package ocr

import (
	"image"
	"image/color"
	"testing"
)

func TestBinarizeSeparatesInkFromPaper(t *testing.T) {
	t.Parallel()

	// left half dark "ink", right half light "paper"
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetGray(x, y, color.Gray{Y: 30})
			} else {
				img.SetGray(x, y, color.Gray{Y: 220})
			}
		}
	}

	out := Binarize(img)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := out.GrayAt(x, y).Y
			if x < 5 && got != 0 {
				t.Fatalf("ink pixel (%d,%d) = %d, want 0", x, y, got)
			}
			if x >= 5 && got != 255 {
				t.Fatalf("paper pixel (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestBinarizeOutputIsBilevel(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}

	out := Binarize(img)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if v := out.GrayAt(x, y).Y; v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			}
		}
	}
}
