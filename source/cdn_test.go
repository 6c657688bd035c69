package source

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// cdnHandler mimics the emoji CDN: it records requests and serves
// fixed bytes per path.
type cdnHandler struct {
	mu       sync.Mutex
	requests []string
	status   int
	body     []byte
}

func (h *cdnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.requests = append(h.requests, r.URL.String())
	h.mu.Unlock()

	if h.status != 0 {
		w.WriteHeader(h.status)
		return
	}
	_, _ = w.Write(h.body)
}

func (h *cdnHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.requests)
}

func newTestCDN(t *testing.T, h *cdnHandler) (*CDNSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	src, err := NewCDN(StyleApple,
		WithBaseURL(srv.URL),
		WithCacheDir(t.TempDir()),
		WithFetcher(NewHTTPFetcherWithClient(srv.Client())),
	)
	if err != nil {
		t.Fatalf("NewCDN: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src, srv
}

func TestCDNSource_EmojiFetchAndCache(t *testing.T) {
	handler := &cdnHandler{body: []byte("thumbs-up-png")}
	src, _ := newTestCDN(t, handler)

	data, err := src.Emoji(context.Background(), "👍")
	if err != nil {
		t.Fatalf("Emoji: %v", err)
	}
	if !bytes.Equal(data, handler.body) {
		t.Errorf("Emoji = %q, want %q", data, handler.body)
	}
	if got := handler.count(); got != 1 {
		t.Fatalf("fetch count = %d, want 1", got)
	}

	// Second resolution is served from the disk cache: same bytes,
	// no new network request.
	again, err := src.Emoji(context.Background(), "👍")
	if err != nil {
		t.Fatalf("Emoji (cached): %v", err)
	}
	if !bytes.Equal(again, data) {
		t.Errorf("cached bytes differ from fetched bytes")
	}
	if got := handler.count(); got != 1 {
		t.Errorf("fetch count after cache hit = %d, want 1", got)
	}
}

func TestCDNSource_EmojiURL(t *testing.T) {
	handler := &cdnHandler{body: []byte("x")}
	src, _ := newTestCDN(t, handler)

	if _, err := src.Emoji(context.Background(), "👍"); err != nil {
		t.Fatalf("Emoji: %v", err)
	}

	want := "/" + url.PathEscape("👍") + "?style=apple"
	handler.mu.Lock()
	got := handler.requests[0]
	handler.mu.Unlock()
	if got != want {
		t.Errorf("request URL = %q, want %q", got, want)
	}
}

func TestCDNSource_NotFound(t *testing.T) {
	handler := &cdnHandler{status: http.StatusNotFound}
	src, _ := newTestCDN(t, handler)

	_, err := src.Emoji(context.Background(), "👍")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Emoji error = %v, want ErrNotFound", err)
	}

	// A miss must not poison the disk cache.
	if src.store.Exists("apple/👍.png") {
		t.Error("404 response was written to the disk cache")
	}
}

func TestCDNSource_TransportErrorIsMiss(t *testing.T) {
	handler := &cdnHandler{body: []byte("x")}
	src, srv := newTestCDN(t, handler)
	srv.Close() // every request now fails at the transport layer

	_, err := src.Emoji(context.Background(), "👍")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Emoji error = %v, want ErrNotFound", err)
	}
}

func TestCDNSource_CustomEmoji(t *testing.T) {
	handler := &cdnHandler{body: []byte("custom-png")}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	src, err := NewCDN(StyleApple,
		WithCacheDir(dir),
		WithFetcher(NewHTTPFetcherWithClient(srv.Client())),
	)
	if err != nil {
		t.Fatalf("NewCDN: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })

	// Pre-populate the discord cache entry so CustomEmoji never hits
	// the real platform CDN.
	if err := src.store.Write("discord/596576798351949847.png", []byte("cached")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := src.CustomEmoji(context.Background(), 596576798351949847)
	if err != nil {
		t.Fatalf("CustomEmoji: %v", err)
	}
	if string(data) != "cached" {
		t.Errorf("CustomEmoji = %q, want %q", data, "cached")
	}
	if got := handler.count(); got != 0 {
		t.Errorf("cached custom emoji triggered %d fetches", got)
	}
}

func TestCDNSource_InvalidStyle(t *testing.T) {
	_, err := NewCDN(Style("nope"), WithCacheDir(t.TempDir()))
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("NewCDN error = %v, want ErrInvalidStyle", err)
	}
}

func TestCDNSource_Prefetch(t *testing.T) {
	handler := &cdnHandler{body: []byte("png")}
	src, _ := newTestCDN(t, handler)

	emojis := []string{"👍", "😀", "😎"}
	if err := src.Prefetch(context.Background(), emojis); err != nil {
		t.Fatalf("Prefetch: %v", err)
	}

	for _, e := range emojis {
		if !src.store.Exists("apple/" + e + ".png") {
			t.Errorf("prefetch did not cache %q", e)
		}
	}
	if got := handler.count(); got != len(emojis) {
		t.Errorf("fetch count = %d, want %d", got, len(emojis))
	}
}

func TestLocalSource(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	if err := store.Write("google/😀.png", []byte("grin")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	src, err := NewLocal(StyleGoogle, dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })

	data, err := src.Emoji(context.Background(), "😀")
	if err != nil {
		t.Fatalf("Emoji: %v", err)
	}
	if string(data) != "grin" {
		t.Errorf("Emoji = %q, want %q", data, "grin")
	}

	if _, err := src.Emoji(context.Background(), "👍"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Emoji miss error = %v, want ErrNotFound", err)
	}
	if _, err := src.CustomEmoji(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("CustomEmoji miss error = %v, want ErrNotFound", err)
	}
}
