package emojitext

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaper measures advance widths through go-text/typesetting's
// HarfBuzz implementation. It holds the parsed font.Font (read-only,
// safe for concurrent use) and pools HarfbuzzShaper instances, which
// carry mutable buffers and are not concurrent-safe.
type shaper struct {
	font *font.Font
	pool sync.Pool
}

// newShaper parses the font data for shaping.
func newShaper(ttf []byte) (*shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("emojitext: parse font for shaping: %w", err)
	}

	return &shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// advance returns the shaped advance width of text in pixels at the
// given size.
func (s *shaper) advance(text string, size float64) float64 {
	if text == "" {
		return 0
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; font.NewFace is a
		// cheap wrapper around the shared thread-safe *Font.
		Face:     font.NewFace(s.font),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return fixedToFloat(output.Advance)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by
// script before shaping; for cursor measurement this heuristic is
// sufficient.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
