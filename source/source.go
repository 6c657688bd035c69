package source

import (
	"context"
	"errors"
)

// Sentinel errors for the source package.
var (
	// ErrNotFound is returned when no artwork exists for an emoji.
	// Transport failures are reported as ErrNotFound too: the renderer
	// treats every unfetchable emoji as a miss and falls back to text.
	ErrNotFound = errors.New("source: emoji not found")

	// ErrInvalidStyle is returned when a source is created with a
	// style the CDN does not recognize.
	ErrInvalidStyle = errors.New("source: invalid style")
)

// Source resolves emoji identities to encoded image bytes.
//
// Both methods return ErrNotFound when the emoji cannot be resolved
// (unknown emoji, HTTP error, timeout). Any other error indicates a
// failure of the local cache storage and is fatal for the render call.
//
// Implementations must be safe for concurrent use; the renderer
// resolves all distinct keys of a render call in parallel.
type Source interface {
	// Emoji returns the encoded bitmap for a Unicode emoji sequence.
	Emoji(ctx context.Context, emoji string) ([]byte, error)

	// CustomEmoji returns the encoded bitmap for a platform emoji
	// referenced by its numeric ID.
	CustomEmoji(ctx context.Context, id uint64) ([]byte, error)

	// Close releases any transport resources held by the source.
	// The source must not be used after Close.
	Close() error
}
