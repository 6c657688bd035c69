package emojitext

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font provides the metrics the compositor needs: glyph advance
// widths, the natural line height, and the em size that emoji bitmaps
// are scaled to.
//
// Implementations must be safe for concurrent use.
type Font interface {
	// Advance returns the total advance width of the text in pixels.
	Advance(text string) float64

	// LineHeight returns the natural vertical distance between
	// consecutive baselines in pixels.
	LineHeight() float64

	// Size returns the font size (em size) in pixels.
	Size() float64
}

// TextDrawer is implemented by fonts that can rasterize text onto an
// image. ImageCanvas requires the font to implement TextDrawer; fonts
// that only measure can still be used with a custom Canvas.
type TextDrawer interface {
	// DrawText draws text with (x, y) as the top-left corner of the
	// line box; the baseline sits one ascent below y.
	DrawText(dst draw.Image, text string, x, y float64, fill color.Color)
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi     float64
	hinting xfont.Hinting
	shaping bool
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:     72,
		hinting: xfont.HintingFull,
	}
}

// WithDPI sets the dots-per-inch resolution of the face.
// The default is 72, which makes the size unit equal to pixels.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithHinting sets the glyph hinting mode.
func WithHinting(h xfont.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithShaping measures advance widths through HarfBuzz shaping
// (go-text/typesetting) instead of summing per-glyph advances. Shaped
// measurement accounts for kerning and ligatures, so the cursor
// position after a text node matches what a shaping-aware canvas
// would draw.
func WithShaping() FaceOption {
	return func(c *faceConfig) {
		c.shaping = true
	}
}

// Face is the default Font implementation, backed by an OpenType font
// parsed with golang.org/x/image/font/opentype. It implements both
// Font and TextDrawer, so it works with ImageCanvas out of the box.
//
// Face is safe for concurrent use.
type Face struct {
	face    xfont.Face
	size    float64
	metrics xfont.Metrics
	shaper  *shaper

	// mu guards face: x/image font.Face implementations carry
	// internal rasterization buffers and are not concurrent-safe.
	mu sync.Mutex
}

// NewFace parses TTF/OTF font data and creates a Face at the given
// size in pixels.
func NewFace(ttf []byte, size float64, opts ...FaceOption) (*Face, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("emojitext: parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("emojitext: create face: %w", err)
	}

	f := &Face{
		face:    face,
		size:    size,
		metrics: face.Metrics(),
	}

	if cfg.shaping {
		sh, err := newShaper(ttf)
		if err != nil {
			_ = face.Close()
			return nil, err
		}
		f.shaper = sh
	}

	return f, nil
}

// Advance implements Font.
func (f *Face) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	if f.shaper != nil {
		return f.shaper.advance(text, f.size)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(xfont.MeasureString(f.face, text))
}

// LineHeight implements Font.
func (f *Face) LineHeight() float64 {
	return fixedToFloat(f.metrics.Height)
}

// Size implements Font.
func (f *Face) Size() float64 {
	return f.size
}

// Ascent returns the distance from the top of the line box to the
// baseline in pixels.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.metrics.Ascent)
}

// DrawText implements TextDrawer.
func (f *Face) DrawText(dst draw.Image, text string, x, y float64, fill color.Color) {
	if text == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: f.face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y + f.Ascent()),
		},
	}
	d.DrawString(text)
}

// Close releases the parsed face's internal buffers.
func (f *Face) Close() error {
	return f.face.Close()
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
