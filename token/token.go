package token

import (
	"math"
	"strings"
)

// Tokenize splits a single line into an ordered sequence of typed nodes.
//
// The scanner walks the line left to right. At each position it tries,
// in priority order: a custom emoji reference (<:name:id> or the
// animated form <a:name:id>) when customEmoji is true; then the longest
// Unicode emoji sequence (ZWJ joins, skin tone modifiers, variation
// selectors, flags, keycaps, subdivision flags); otherwise the current
// plain text run is extended by one rune.
//
// Consecutive non-emoji runes coalesce into a single Text node.
// Sequences that are only partially present at the end of the input are
// consumed as text. Tokenize is total: it never fails, and every input
// round-trips losslessly through the node contents.
func Tokenize(line string, customEmoji bool) Line {
	if line == "" {
		return nil
	}

	runes := []rune(line)
	nodes := make(Line, 0, 4)
	textStart := 0

	flush := func(end int) {
		if end > textStart {
			nodes = append(nodes, Node{Kind: Text, Content: string(runes[textStart:end])})
		}
	}

	i := 0
	for i < len(runes) {
		if customEmoji {
			if node, n := matchCustom(runes[i:]); n > 0 {
				flush(i)
				nodes = append(nodes, node)
				i += n
				textStart = i
				continue
			}
		}

		if n := matchEmoji(runes[i:]); n > 0 {
			flush(i)
			nodes = append(nodes, Node{Kind: Emoji, Content: string(runes[i : i+n])})
			i += n
			textStart = i
			continue
		}

		i++
	}
	flush(len(runes))

	return nodes
}

// Split tokenizes a multi-line string, one Line per '\n'-separated
// input line.
func Split(text string, customEmoji bool) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, line := range raw {
		lines[i] = Tokenize(line, customEmoji)
	}
	return lines
}

// matchCustom attempts to parse a custom emoji reference at runes[0].
// The grammar is <:name:id> with an optional animation marker,
// <a:name:id>, where name is one or more word characters and id is one
// or more decimal digits. Returns the node and the number of runes
// consumed, or a zero count if the input does not match.
func matchCustom(runes []rune) (Node, int) {
	if len(runes) < 5 || runes[0] != '<' {
		return Node{}, 0
	}

	i := 1
	// Animated form: "a" directly between "<" and ":".
	if runes[i] == 'a' && i+1 < len(runes) && runes[i+1] == ':' {
		i++
	}
	if i >= len(runes) || runes[i] != ':' {
		return Node{}, 0
	}
	i++

	nameStart := i
	for i < len(runes) && isWordRune(runes[i]) {
		i++
	}
	if i == nameStart || i >= len(runes) || runes[i] != ':' {
		return Node{}, 0
	}
	name := string(runes[nameStart:i])
	i++

	idStart := i
	var id uint64
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		d := uint64(runes[i] - '0')
		// An ID that would overflow uint64 could alias another
		// custom emoji; treat the whole reference as text instead.
		if id > (math.MaxUint64-d)/10 {
			return Node{}, 0
		}
		id = id*10 + d
		i++
	}
	if i == idStart || i >= len(runes) || runes[i] != '>' {
		return Node{}, 0
	}
	i++

	return Node{
		Kind:    CustomEmoji,
		Content: string(runes[:i]),
		Name:    name,
		ID:      id,
	}, i
}

// isWordRune reports characters allowed in a custom emoji name.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// matchEmoji attempts to parse a complete Unicode emoji sequence at
// runes[0] and returns the number of runes consumed, or 0 if the
// position does not start a confirmed sequence.
func matchEmoji(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	r := runes[0]

	// Flag: exactly two regional indicators. A lone indicator is an
	// incomplete sequence and stays text.
	if isRegionalIndicator(r) {
		if len(runes) >= 2 && isRegionalIndicator(runes[1]) {
			return 2
		}
		return 0
	}

	// Subdivision flag: black flag + tag characters + cancel tag.
	if r == runeBlackFlag {
		if n := matchTagSequence(runes); n > 0 {
			return n
		}
		// A black flag without tags is an ordinary pictograph.
		return matchExtended(runes)
	}

	// Keycap: digit/#/* + optional U+FE0F + U+20E3.
	if isKeycapBase(r) {
		return matchKeycap(runes)
	}

	return matchExtended(runes)
}

// matchExtended parses a pictograph with optional variation selector,
// optional skin tone modifier, and any number of ZWJ-joined elements.
func matchExtended(runes []rune) int {
	r := runes[0]
	textDefault := isTextDefaultEmoji(r)
	if !isEmojiPresentation(r) && !textDefault {
		return 0
	}

	i := 1
	switch {
	case i < len(runes) && runes[i] == runeVS15:
		// Explicitly requested text presentation.
		return 0
	case i < len(runes) && runes[i] == runeVS16:
		i++
	case textDefault:
		// Text-default symbols need U+FE0F to become emoji, except
		// when a skin tone modifier follows: RGI modifier sequences
		// like U+270C U+1F3FD omit the selector.
		if !(i < len(runes) && isModifier(runes[i]) && isModifierBase(r)) {
			return 0
		}
	}

	if i < len(runes) && isModifier(runes[i]) && isModifierBase(r) {
		i++
	}

	for i+1 < len(runes) && runes[i] == runeZWJ {
		n := matchJoined(runes[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
	}

	return i
}

// matchJoined parses one element following a ZWJ.
func matchJoined(runes []rune) int {
	r := runes[0]
	if !isSequenceMember(r) {
		return 0
	}

	i := 1
	if i < len(runes) && runes[i] == runeVS15 {
		return 0
	}
	if i < len(runes) && runes[i] == runeVS16 {
		i++
	}
	if i < len(runes) && isModifier(runes[i]) && isModifierBase(r) {
		i++
	}
	return i
}

// matchKeycap parses a keycap sequence: base + [U+FE0F] + U+20E3.
// A bare digit or symbol is not an emoji.
func matchKeycap(runes []rune) int {
	i := 1
	if i < len(runes) && runes[i] == runeVS16 {
		i++
	}
	if i < len(runes) && runes[i] == runeKeycap {
		return i + 1
	}
	return 0
}

// matchTagSequence parses a subdivision flag:
// black flag + one or more tag characters + cancel tag.
func matchTagSequence(runes []rune) int {
	i := 1
	for i < len(runes) && isTagChar(runes[i]) {
		i++
	}
	if i > 1 && i < len(runes) && runes[i] == runeCancelTag {
		return i + 1
	}
	return 0
}
