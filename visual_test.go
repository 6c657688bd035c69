package emojitext

import (
	"context"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// TestRenderer_EndToEnd renders a real face and a served emoji bitmap
// onto an image canvas and checks that both regions got pixels.
func TestRenderer_EndToEnd(t *testing.T) {
	face, err := NewFace(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	src := newFakeSource()
	src.emoji["👍"] = encodePNG(t, 72, 72)
	r := newTestRenderer(t, src)

	dst := image.NewRGBA(image.Rect(0, 0, 200, 40))
	canvas := NewImageCanvas(dst)

	err = r.Text(context.Background(), canvas, 4, 4, "Hi 👍", face, color.Black)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	textPainted, emojiPainted := false, false
	textEnd := 4 + int(face.Advance("Hi "))
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < textEnd {
				textPainted = true
			} else {
				emojiPainted = true
			}
		}
	}
	if !textPainted {
		t.Error("no pixels in the text region")
	}
	if !emojiPainted {
		t.Error("no pixels in the emoji region")
	}
}
