package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Public emoji CDN endpoints serving per-style Unicode emoji artwork.
const (
	// ElkShCDN is the default emoji CDN.
	ElkShCDN = "https://emojicdn.elk.sh"

	// MQrioDevCDN is an alternate mirror of the emoji CDN.
	MQrioDevCDN = "https://emoji.mqrio.dev"
)

// discordCDN serves custom emoji bitmaps by numeric ID.
const discordCDN = "https://cdn.discordapp.com/emojis"

// discordDir is the disk cache subdirectory for custom emoji. Custom
// emoji IDs live in their own namespace, separate from every style.
const discordDir = "discord"

// CDNOption configures CDNSource creation.
type CDNOption func(*cdnConfig)

// cdnConfig holds configuration for CDNSource.
type cdnConfig struct {
	baseURL  string
	cacheDir string
	fetcher  Fetcher
	store    Store
}

// WithBaseURL overrides the Unicode emoji CDN endpoint.
// The default is ElkShCDN.
func WithBaseURL(base string) CDNOption {
	return func(c *cdnConfig) {
		c.baseURL = base
	}
}

// WithCacheDir sets the root directory of the on-disk cache.
// The default is <user cache dir>/emojitext.
func WithCacheDir(dir string) CDNOption {
	return func(c *cdnConfig) {
		c.cacheDir = dir
	}
}

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f Fetcher) CDNOption {
	return func(c *cdnConfig) {
		c.fetcher = f
	}
}

// WithStore replaces the default directory-backed disk cache.
// WithCacheDir is ignored when a Store is supplied.
func WithStore(s Store) CDNOption {
	return func(c *cdnConfig) {
		c.store = s
	}
}

// CDNSource resolves emoji through an on-disk cache backed by a
// network fetch.
//
// Unicode emoji are requested from the emoji CDN keyed by style; custom
// emoji are requested from the platform CDN by numeric ID. Fetched
// bitmaps are persisted to the disk cache before being returned, so a
// given key is fetched from the network at most once per cache
// directory. Entries are never evicted.
//
// CDNSource is safe for concurrent use.
type CDNSource struct {
	style   Style
	baseURL string
	fetcher Fetcher
	store   Store
}

// NewCDN creates a CDNSource for the given style.
func NewCDN(style Style, opts ...CDNOption) (*CDNSource, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}

	cfg := cdnConfig{baseURL: ElkShCDN}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.store == nil {
		dir := cfg.cacheDir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, fmt.Errorf("source: resolve user cache dir: %w", err)
			}
			dir = filepath.Join(base, "emojitext")
		}
		store, err := NewDirStore(dir)
		if err != nil {
			return nil, err
		}
		cfg.store = store
	}

	if cfg.fetcher == nil {
		cfg.fetcher = NewHTTPFetcher()
	}

	return &CDNSource{
		style:   style,
		baseURL: cfg.baseURL,
		fetcher: cfg.fetcher,
		store:   cfg.store,
	}, nil
}

// Style returns the style this source requests from the CDN.
func (s *CDNSource) Style() Style {
	return s.style
}

// Emoji implements Source. Resolution order: disk cache, then CDN
// fetch with a write-back to the disk cache.
func (s *CDNSource) Emoji(ctx context.Context, emoji string) ([]byte, error) {
	name := path.Join(s.style.String(), emoji+".png")
	u := s.baseURL + "/" + url.PathEscape(emoji) + "?style=" + s.style.String()
	return s.lookup(ctx, name, u)
}

// CustomEmoji implements Source.
func (s *CDNSource) CustomEmoji(ctx context.Context, id uint64) ([]byte, error) {
	file := strconv.FormatUint(id, 10) + ".png"
	return s.lookup(ctx, path.Join(discordDir, file), discordCDN+"/"+file)
}

// lookup reads an entry from the disk cache, falling back to a network
// fetch. Fetch failures of any kind become ErrNotFound: the caller
// degrades to textual rendering. Disk failures other than a plain miss
// propagate, since they indicate the cache itself is broken.
func (s *CDNSource) lookup(ctx context.Context, name, fetchURL string) ([]byte, error) {
	data, err := s.store.Read(name)
	switch {
	case err == nil:
		return data, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("source: read cache entry %s: %w", name, err)
	}

	data, err = s.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := s.store.Write(name, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Prefetch warms the disk cache for a set of Unicode emoji. Fetches
// run concurrently; emoji that cannot be fetched are skipped. Only
// cache storage failures are reported.
func (s *CDNSource) Prefetch(ctx context.Context, emojis []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(16)

	for _, emoji := range emojis {
		emoji := emoji
		g.Go(func() error {
			_, err := s.Emoji(ctx, emoji)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// Close implements Source.
func (s *CDNSource) Close() error {
	return s.fetcher.Close()
}

// LocalSource resolves emoji from a previously populated disk cache
// and never touches the network. Emoji absent from the cache are
// reported as ErrNotFound.
type LocalSource struct {
	style Style
	store Store
}

// NewLocal creates a LocalSource over an existing cache directory.
func NewLocal(style Style, dir string) (*LocalSource, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}
	store, err := NewDirStore(dir)
	if err != nil {
		return nil, err
	}
	return &LocalSource{style: style, store: store}, nil
}

// Emoji implements Source.
func (s *LocalSource) Emoji(_ context.Context, emoji string) ([]byte, error) {
	return s.read(path.Join(s.style.String(), emoji+".png"))
}

// CustomEmoji implements Source.
func (s *LocalSource) CustomEmoji(_ context.Context, id uint64) ([]byte, error) {
	return s.read(path.Join(discordDir, strconv.FormatUint(id, 10)+".png"))
}

func (s *LocalSource) read(name string) ([]byte, error) {
	data, err := s.store.Read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("source: read cache entry %s: %w", name, err)
	}
	return data, nil
}

// Close implements Source. LocalSource holds no transport resources.
func (s *LocalSource) Close() error {
	return nil
}
