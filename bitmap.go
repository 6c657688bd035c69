package emojitext

import (
	"bytes"
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	// Decoders for the formats emoji CDNs serve.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DefaultPadding is the horizontal gutter, in pixels, left around an
// emoji bitmap so it does not touch adjacent glyphs.
const DefaultPadding = 1

// prepareBitmap decodes raw emoji bytes and scales the result to fit
// the font's em size. The target width is floor(size) - padding; the
// height preserves the source aspect ratio. Scaling uses Catmull-Rom
// resampling for smooth downscaling.
//
// The returned image is freshly allocated and read-only by convention:
// the renderer pastes it any number of times without mutating it.
func prepareBitmap(raw []byte, size float64, padding int) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("image has empty bounds")
	}

	w := int(size) - padding
	if w < 1 {
		w = 1
	}
	h := int(math.Round(float64(w) * float64(b.Dy()) / float64(b.Dx())))
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
