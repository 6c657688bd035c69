package emojitext

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is the drawing surface abstraction the renderer composites
// onto. DrawText draws a text run with (x, y) as the top-left corner
// of the line box; Paste composites a prepared emoji bitmap with its
// top-left corner at (x, y), respecting the bitmap's alpha channel and
// never mutating the source bitmap.
type Canvas interface {
	DrawText(x, y float64, text string, font Font, fill color.Color)
	Paste(x, y int, bm image.Image)
}

// ImageCanvas is the default Canvas, drawing onto any draw.Image.
type ImageCanvas struct {
	dst draw.Image
}

// NewImageCanvas creates a canvas over a destination image.
func NewImageCanvas(dst draw.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

// DrawText implements Canvas. The font must implement TextDrawer
// (Face does); fonts that cannot rasterize draw nothing.
func (c *ImageCanvas) DrawText(x, y float64, text string, font Font, fill color.Color) {
	td, ok := font.(TextDrawer)
	if !ok {
		return
	}
	td.DrawText(c.dst, text, x, y, fill)
}

// Paste implements Canvas with Porter-Duff "over" compositing, so the
// emoji bitmap's transparent gutter keeps the surrounding pixels.
func (c *ImageCanvas) Paste(x, y int, bm image.Image) {
	b := bm.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.dst, r, bm, b.Min, draw.Over)
}
