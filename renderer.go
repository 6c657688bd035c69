package emojitext

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/emojitext/cache"
	"github.com/gogpu/emojitext/source"
	"github.com/gogpu/emojitext/token"
)

// Renderer composites text lines with emoji bitmaps onto a Canvas.
//
// A renderer owns its emoji source and, unless disabled, two in-memory
// caches — one for Unicode emoji keyed by normalized character
// sequence, one for custom emoji keyed by numeric ID. The key spaces
// never mix. Both caches grow for the renderer's lifetime and are
// released by Close.
//
// Renderer is safe for concurrent use. Concurrent render calls may
// resolve the same key twice when both miss the cache simultaneously;
// within one call every distinct key resolves at most once.
type Renderer struct {
	source      source.Source
	padding     int
	customEmoji bool

	// emojiCache and customCache are nil when the in-memory layer is
	// disabled.
	emojiCache  *cache.Cache[string]
	customCache *cache.Cache[uint64]

	closed atomic.Bool
}

// New creates a Renderer. Without WithSource, a CDN-backed source is
// created from the configured style and cache directory.
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	src := cfg.source
	if src == nil {
		var cdnOpts []source.CDNOption
		if cfg.cacheDir != "" {
			cdnOpts = append(cdnOpts, source.WithCacheDir(cfg.cacheDir))
		}
		cdn, err := source.NewCDN(cfg.style, cdnOpts...)
		if err != nil {
			return nil, err
		}
		src = cdn
	}

	r := &Renderer{
		source:      src,
		padding:     cfg.padding,
		customEmoji: cfg.customEmoji,
	}
	if cfg.memoryCache {
		r.emojiCache = cache.New[string](cache.StringHasher)
		r.customCache = cache.New[uint64](cache.Uint64Hasher)
	}
	return r, nil
}

// Close releases the in-memory caches and the source's transport
// resources. Close is idempotent; render calls after Close return
// ErrRendererClosed.
func (r *Renderer) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	if r.emojiCache != nil {
		r.emojiCache.ReleaseAll()
		r.customCache.ReleaseAll()
	}
	return r.source.Close()
}

// Text renders a (possibly multi-line) string onto the canvas with
// (x, y) as the top-left corner of the first line. See TextLines for
// the full semantics.
func (r *Renderer) Text(ctx context.Context, canvas Canvas, x, y float64, text string, font Font, fill color.Color, opts ...TextOption) error {
	return r.TextLines(ctx, canvas, x, y, strings.Split(text, "\n"), font, fill, opts...)
}

// TextLines renders lines onto the canvas, one below the other.
//
// Each line is tokenized into text and emoji nodes. All distinct emoji
// referenced by any line are resolved and their bitmaps prepared
// before the first draw call, so a decode failure aborts the call with
// no partial output. Per line, a cursor starts at x and advances by
// each node's rendered width: the font's measured advance for text and
// fallbacks, the prepared bitmap width for resolved emoji. Emoji
// bitmaps are pasted one pixel right of the cursor and vertically
// centered within the line height. After each line, y advances by the
// line height (the font's natural height unless overridden with
// WithLineHeight).
//
// Emoji that cannot be resolved degrade to textual fallbacks; decode
// and cache storage failures are returned as errors.
func (r *Renderer) TextLines(ctx context.Context, canvas Canvas, x, y float64, lines []string, font Font, fill color.Color, opts ...TextOption) error {
	if r.closed.Load() {
		return ErrRendererClosed
	}
	if len(lines) == 0 {
		return nil
	}

	tc := textConfig{lineHeight: font.LineHeight()}
	for _, opt := range opts {
		opt(&tc)
	}

	tokenized := make([]token.Line, len(lines))
	hasEmoji := false
	for i, line := range lines {
		tokenized[i] = token.Tokenize(line, r.customEmoji)
		hasEmoji = hasEmoji || tokenized[i].HasEmoji()
	}

	// Fast path: nothing to resolve, draw each line as-is.
	if !hasEmoji {
		for i, line := range lines {
			canvas.DrawText(x, y+float64(i)*tc.lineHeight, line, font, fill)
		}
		return nil
	}

	// Union of distinct keys across all lines: the deduplication point.
	emojiKeys := make(map[string]struct{})
	customKeys := make(map[uint64]struct{})
	for _, line := range tokenized {
		for _, node := range line {
			switch node.Kind {
			case token.Emoji:
				emojiKeys[emojiKey(node.Content)] = struct{}{}
			case token.CustomEmoji:
				customKeys[node.ID] = struct{}{}
			}
		}
	}

	emojiRaw, customRaw, err := r.resolve(ctx, emojiKeys, customKeys)
	if err != nil {
		return err
	}

	// Prepare every resolved bitmap up front.
	size := font.Size()
	emojiBitmaps := make(map[string]image.Image, len(emojiRaw))
	for key, raw := range emojiRaw {
		if raw == nil {
			continue
		}
		bm, err := prepareBitmap(raw, size, r.padding)
		if err != nil {
			return &DecodeError{Key: key, Err: err}
		}
		emojiBitmaps[key] = bm
	}
	customBitmaps := make(map[uint64]image.Image, len(customRaw))
	for id, raw := range customRaw {
		if raw == nil {
			continue
		}
		bm, err := prepareBitmap(raw, size, r.padding)
		if err != nil {
			return &DecodeError{Key: strconv.FormatUint(id, 10), Err: err}
		}
		customBitmaps[id] = bm
	}

	// Emoji are centered within the line's vertical extent.
	vOffset := math.Floor((tc.lineHeight - size) / 2)

	for _, line := range tokenized {
		cursorX := x
		for _, node := range line {
			var bm image.Image
			switch node.Kind {
			case token.Emoji:
				bm = emojiBitmaps[emojiKey(node.Content)]
			case token.CustomEmoji:
				bm = customBitmaps[node.ID]
			}

			if bm != nil {
				canvas.Paste(int(cursorX)+1, int(y+vOffset), bm)
				cursorX += float64(bm.Bounds().Dx())
				continue
			}

			fallback := node.Fallback()
			canvas.DrawText(cursorX, y, fallback, font, fill)
			cursorX += font.Advance(fallback)
		}
		y += tc.lineHeight
	}

	return nil
}

// resolve fetches raw bitmap bytes for every requested key, all keys
// concurrently, at most one source call per key. Every requested key
// gets an entry in the result: nil marks a definitive miss, so callers
// can distinguish "absent" from "not attempted". Only cache storage
// failures abort the resolution.
func (r *Renderer) resolve(ctx context.Context, emojiKeys map[string]struct{}, customKeys map[uint64]struct{}) (map[string][]byte, map[uint64][]byte, error) {
	emojiRaw := make(map[string][]byte, len(emojiKeys))
	customRaw := make(map[uint64][]byte, len(customKeys))

	Logger().Debug("resolving emoji",
		"unicode", len(emojiKeys), "custom", len(customKeys))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for key := range emojiKeys {
		key := key
		g.Go(func() error {
			data, err := r.lookupEmoji(ctx, key)
			if err != nil {
				return err
			}
			mu.Lock()
			emojiRaw[key] = data
			mu.Unlock()
			return nil
		})
	}
	for id := range customKeys {
		id := id
		g.Go(func() error {
			data, err := r.lookupCustom(ctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			customRaw[id] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return emojiRaw, customRaw, nil
}

// lookupEmoji resolves one Unicode emoji key: in-memory cache first,
// then the source. A miss is returned as (nil, nil) and is NOT cached
// in memory, so a later call can retry the fetch.
func (r *Renderer) lookupEmoji(ctx context.Context, key string) ([]byte, error) {
	if r.emojiCache != nil {
		if data, ok := r.emojiCache.Get(key); ok {
			return data, nil
		}
	}

	data, err := r.source.Emoji(ctx, key)
	if errors.Is(err, source.ErrNotFound) {
		Logger().Warn("emoji not found, degrading to text", "emoji", key)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.emojiCache != nil {
		r.emojiCache.Put(key, data)
	}
	return data, nil
}

// lookupCustom resolves one custom emoji ID.
func (r *Renderer) lookupCustom(ctx context.Context, id uint64) ([]byte, error) {
	if r.customCache != nil {
		if data, ok := r.customCache.Get(id); ok {
			return data, nil
		}
	}

	data, err := r.source.CustomEmoji(ctx, id)
	if errors.Is(err, source.ErrNotFound) {
		Logger().Warn("custom emoji not found, degrading to text", "id", id)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.customCache != nil {
		r.customCache.Put(id, data)
	}
	return data, nil
}

// emojiKey normalizes a Unicode emoji sequence to NFC so canonically
// equivalent sequences share one cache slot and one fetch.
func emojiKey(content string) string {
	return norm.NFC.String(content)
}
