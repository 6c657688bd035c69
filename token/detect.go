package token

// Unicode emoji classification following UTS #51, reduced to what the
// scanner needs. A rune can start a sequence either because it defaults
// to emoji presentation, or because it is a text-default symbol that
// becomes an emoji with U+FE0F.

const (
	runeZWJ       = 0x200D  // Zero-Width Joiner
	runeVS15      = 0xFE0E  // variation selector: text presentation
	runeVS16      = 0xFE0F  // variation selector: emoji presentation
	runeKeycap    = 0x20E3  // combining enclosing keycap
	runeBlackFlag = 0x1F3F4 // base of subdivision flag sequences
	runeCancelTag = 0xE007F // terminates subdivision flag sequences
)

// isEmojiPresentation reports runes with Emoji_Presentation=Yes that
// can stand alone as an emoji. Components (skin tones, regional
// indicators) are deliberately excluded: they are only valid inside a
// sequence and fall through to text when they appear bare.
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // Misc Symbols and Pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // Supplemental Symbols
		return true
	case r >= 0x1FA00 && r <= 0x1FAFF: // Extended-A and Extended-B
		return true
	case r >= 0x1F000 && r <= 0x1F02F: // Mahjong tiles
		return true
	case r >= 0x1F0A0 && r <= 0x1F0FF: // Playing cards
		return true
	default:
		return false
	}
}

// isTextDefaultEmoji reports runes with Emoji=Yes but
// Emoji_Presentation=No. They render as text unless followed by U+FE0F.
func isTextDefaultEmoji(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x26FF: // Miscellaneous Symbols
		return true
	case r >= 0x2702 && r <= 0x27B0: // Dingbats
		return true
	case r == 0x27BF:
		return true
	case r == 0x2194 || r == 0x2195: // Arrows with emoji variants
		return true
	case r >= 0x2196 && r <= 0x2199:
		return true
	case r == 0x21A9 || r == 0x21AA:
		return true
	case r == 0x203C || r == 0x2049: // Double punctuation
		return true
	case r == 0x2122 || r == 0x2139: // TM, information
		return true
	case r == 0x00A9 || r == 0x00AE: // Copyright, registered
		return true
	case r == 0x24C2: // Circled M
		return true
	case r >= 0x23E9 && r <= 0x23F3: // Media control symbols
		return true
	case r >= 0x23F8 && r <= 0x23FA:
		return true
	case r == 0x2328 || r == 0x231A || r == 0x231B: // Keyboard, watch
		return true
	case r >= 0x25AA && r <= 0x25AB: // Geometric shapes used as emoji
		return true
	case r == 0x25B6 || r == 0x25C0:
		return true
	case r >= 0x25FB && r <= 0x25FE:
		return true
	case r >= 0x2934 && r <= 0x2935: // Curved arrows
		return true
	case r >= 0x2B05 && r <= 0x2B07: // Heavy arrows
		return true
	case r == 0x2B1B || r == 0x2B1C:
		return true
	case r == 0x2B50 || r == 0x2B55:
		return true
	case r == 0x3030 || r == 0x303D: // Wavy dash, part alternation
		return true
	case r == 0x3297 || r == 0x3299: // Circled ideographs
		return true
	default:
		return false
	}
}

// isModifier reports Fitzpatrick skin tone modifiers (U+1F3FB-U+1F3FF).
func isModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// isModifierBase reports runes that accept a skin tone modifier:
// humans, body parts, and human activities.
func isModifierBase(r rune) bool {
	switch {
	case r >= 0x1F466 && r <= 0x1F469: // Boy, girl, man, woman
		return true
	case r >= 0x1F46E && r <= 0x1F478: // Police officer through princess
		return true
	case r == 0x1F47C: // Baby angel
		return true
	case r >= 0x1F481 && r <= 0x1F487: // Gestures and grooming
		return true
	case r == 0x1F44B || r == 0x1F44C || r == 0x1F44D || r == 0x1F44E: // Hands
		return true
	case r >= 0x1F446 && r <= 0x1F450: // Pointing and open hands
		return true
	case r == 0x1F4AA: // Flexed biceps
		return true
	case r >= 0x1F574 && r <= 0x1F575: // Suit levitating, detective
		return true
	case r == 0x1F57A: // Man dancing
		return true
	case r == 0x1F590: // Hand with fingers splayed
		return true
	case r >= 0x1F595 && r <= 0x1F596: // Middle finger, vulcan salute
		return true
	case r >= 0x1F645 && r <= 0x1F64F: // Person gesturing through folded hands
		return true
	case r == 0x1F6A3: // Person rowing
		return true
	case r >= 0x1F6B4 && r <= 0x1F6B6: // Biking, walking
		return true
	case r == 0x1F6C0: // Person taking bath
		return true
	case r >= 0x1F918 && r <= 0x1F91F: // Hand signs
		return true
	case r == 0x1F926: // Face palm
		return true
	case r >= 0x1F930 && r <= 0x1F939: // Pregnant person through juggling
		return true
	case r >= 0x1F93C && r <= 0x1F93E: // Wrestling, water polo, handball
		return true
	case r == 0x261D || r == 0x26F9: // Index pointing up, bouncing ball
		return true
	case r >= 0x270A && r <= 0x270D: // Fists, writing hand
		return true
	default:
		return false
	}
}

// isRegionalIndicator reports regional indicator symbols A-Z.
// Two of them form a flag emoji.
func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// isKeycapBase reports runes that can form a keycap sequence
// when followed by an optional U+FE0F and U+20E3.
func isKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// isTagChar reports tag characters used in subdivision flag sequences.
func isTagChar(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// isSequenceMember reports runes that may follow a ZWJ inside a
// composite sequence: any emoji-capable rune plus sequence components.
func isSequenceMember(r rune) bool {
	return isEmojiPresentation(r) || isTextDefaultEmoji(r) ||
		isModifier(r) || isRegionalIndicator(r) ||
		r == runeVS16 || r == runeZWJ
}
