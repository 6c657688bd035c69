package emojitext

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestImageCanvas_Paste(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// White background.
	for i := range dst.Pix {
		dst.Pix[i] = 0xFF
	}

	// 2x2 bitmap: opaque red top row, transparent bottom row.
	bm := image.NewRGBA(image.Rect(0, 0, 2, 2))
	bm.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	bm.SetRGBA(1, 0, color.RGBA{R: 0xFF, A: 0xFF})

	canvas := NewImageCanvas(dst)
	canvas.Paste(3, 4, bm)

	if got := dst.RGBAAt(3, 4); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("pixel (3,4) = %v, want opaque red", got)
	}
	// The transparent half must keep the background.
	if got := dst.RGBAAt(3, 5); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("pixel (3,5) = %v, want untouched white", got)
	}
	// The source bitmap must not be mutated by compositing.
	if got := bm.RGBAAt(0, 0); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("source bitmap mutated: %v", got)
	}
}

func TestImageCanvas_DrawText(t *testing.T) {
	face, err := NewFace(goregular.TTF, 20)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	dst := image.NewRGBA(image.Rect(0, 0, 100, 40))
	canvas := NewImageCanvas(dst)
	canvas.DrawText(0, 0, "Hi", face, color.Black)

	painted := false
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("DrawText painted no pixels")
	}
}

func TestImageCanvas_DrawTextMeasureOnlyFont(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	canvas := NewImageCanvas(dst)

	// A font without rasterization support draws nothing and must not
	// panic.
	canvas.DrawText(0, 0, "Hi", fakeFont{size: 16, lineHeight: 20}, color.Black)

	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatal("measure-only font painted pixels")
		}
	}
}
