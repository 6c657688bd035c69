package emojitext

import "github.com/gogpu/emojitext/source"

// Option configures Renderer creation.
type Option func(*config)

// config holds configuration for Renderer.
type config struct {
	style       source.Style
	cacheDir    string
	memoryCache bool
	customEmoji bool
	padding     int
	source      source.Source
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		style:       source.StyleApple,
		memoryCache: true,
		padding:     DefaultPadding,
	}
}

// WithStyle selects the emoji artwork set requested from the CDN.
// The default is source.StyleApple.
func WithStyle(style source.Style) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithCacheDir sets the root directory of the on-disk emoji cache.
// The default is <user cache dir>/emojitext. Ignored when WithSource
// supplies a source.
func WithCacheDir(dir string) Option {
	return func(c *config) {
		c.cacheDir = dir
	}
}

// WithMemoryCache enables or disables the in-memory bitmap cache.
// The default is enabled; disabling it makes every render call go to
// the disk cache (and, on a disk miss, the network).
func WithMemoryCache(enabled bool) Option {
	return func(c *config) {
		c.memoryCache = enabled
	}
}

// WithCustomEmoji enables detection of the <:name:id> custom emoji
// syntax during tokenization. The default is disabled: the syntax then
// renders as literal text.
func WithCustomEmoji(enabled bool) Option {
	return func(c *config) {
		c.customEmoji = enabled
	}
}

// WithPadding sets the horizontal gutter, in pixels, subtracted from
// the font size when sizing emoji bitmaps. The default is
// DefaultPadding (1).
func WithPadding(padding int) Option {
	return func(c *config) {
		c.padding = padding
	}
}

// WithSource replaces the default CDN-backed source. WithStyle and
// WithCacheDir are ignored when a source is supplied.
func WithSource(src source.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// TextOption configures a single render call.
type TextOption func(*textConfig)

// textConfig holds per-call configuration.
type textConfig struct {
	lineHeight float64
}

// WithLineHeight overrides the vertical distance between lines.
// The default is the font's natural line height.
func WithLineHeight(h float64) TextOption {
	return func(c *textConfig) {
		c.lineHeight = h
	}
}
