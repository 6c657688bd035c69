// Package emojitext renders mixed text+emoji strings onto raster
// images.
//
// # Overview
//
// Standard font rendering draws emoji as monochrome outlines or tofu
// boxes. emojitext tokenizes each line into runs of plain glyphs and
// emoji references (Unicode emoji and platform custom emoji), resolves
// every distinct emoji to a bitmap — in-memory cache, then on-disk
// cache, then CDN fetch, all distinct keys concurrently — and
// composites text and resized bitmaps with correct horizontal cursor
// advancement and vertical centering.
//
// # Quick Start
//
//	face, err := emojitext.NewFace(ttfData, 16)
//	if err != nil { ... }
//
//	r, err := emojitext.New(emojitext.WithStyle(source.StyleApple))
//	if err != nil { ... }
//	defer r.Close()
//
//	dst := image.NewRGBA(image.Rect(0, 0, 400, 100))
//	canvas := emojitext.NewImageCanvas(dst)
//	err = r.Text(ctx, canvas, 10, 10, "Hello, world 👍", face, color.Black)
//
// # Architecture
//
// The library is organized into:
//   - Root package: Renderer (layout and compositing), Canvas and Font
//     capabilities with image/draw-backed defaults, bitmap preparation
//   - token: line tokenization into typed nodes
//   - source: emoji bitmap resolution (disk cache + CDN fetch)
//   - cache: sharded in-memory bitmap cache
//
// # Failure Semantics
//
// An emoji that cannot be resolved never aborts a render call: the
// node degrades to its textual fallback ("[:name:]" for custom emoji,
// the literal character for Unicode emoji). Bytes that resolve but do
// not decode as an image are a hard error for the whole call, since
// they indicate a corrupted cache entry or CDN content mismatch; the
// resolve-before-draw ordering guarantees no partial output in that
// case.
package emojitext

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
