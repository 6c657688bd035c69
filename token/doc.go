// Package token splits text lines into runs of plain glyphs and emoji
// references for the emojitext renderer.
//
// A line is tokenized into an ordered sequence of typed nodes:
//
//	line := token.Tokenize("Hi 👍 <:wave:123456789>", true)
//	for _, node := range line {
//	    switch node.Kind {
//	    case token.Text:
//	        // draw with the font
//	    case token.Emoji, token.CustomEmoji:
//	        // resolve to a bitmap
//	    }
//	}
//
// Unicode emoji detection follows Unicode Technical Report #51 and
// keeps multi-codepoint sequences together: ZWJ joins, skin tone
// modifiers, variation selectors, regional indicator flags, keycaps,
// and subdivision flag tag sequences. Sequences that are only partially
// present (a lone regional indicator, a digit without its keycap) are
// treated as plain text; the tokenizer never consumes an unconfirmed
// sequence and never fails.
//
// Custom emoji references use the bracket grammar <:name:id> (or
// <a:name:id> for animated emoji), where id is the numeric identity
// used to fetch the bitmap from the platform CDN.
package token
