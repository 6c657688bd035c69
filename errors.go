package emojitext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the emojitext package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("emojitext: empty font data")

	// ErrRendererClosed is returned when a render call is made on a
	// closed renderer.
	ErrRendererClosed = errors.New("emojitext: renderer is closed")
)

// DecodeError is returned when resolved emoji bytes cannot be decoded
// as an image. It indicates a corrupted cache entry or unexpected CDN
// content, not a normal "emoji doesn't exist" miss, and aborts the
// whole render call before any drawing happens.
type DecodeError struct {
	// Key is the emoji key whose bytes failed to decode.
	Key string

	// Err is the underlying image decode error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("emojitext: decode bitmap for %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
