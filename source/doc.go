// Package source resolves emoji identities to encoded image bytes.
//
// A Source answers two questions: "what does this Unicode emoji look
// like in a given vendor style" and "what does this custom emoji ID
// look like". The default implementation, CDNSource, layers an on-disk
// cache over HTTP fetches:
//
//	src, err := source.NewCDN(source.StyleApple)
//	if err != nil { ... }
//	defer src.Close()
//
//	data, err := src.Emoji(ctx, "👍")
//
// Resolution misses — unknown emoji, HTTP errors, timeouts — are all
// reported as ErrNotFound so renderers can degrade to textual output.
// Disk cache failures propagate as distinct errors.
//
// The disk cache layout is one PNG per entry:
//
//	<cache dir>/<style>/<emoji>.png
//	<cache dir>/discord/<id>.png
//
// File presence is the sole validity signal; entries are never evicted
// and writes are atomic (temp file + rename), so a cache directory may
// be shared between processes.
package source
