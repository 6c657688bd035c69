package source

// Style selects which vendor's emoji artwork the CDN serves.
type Style string

// Styles recognized by the emoji CDN.
const (
	StyleApple     Style = "apple"
	StyleGoogle    Style = "google"
	StyleMicrosoft Style = "microsoft"
	StyleSamsung   Style = "samsung"
	StyleWhatsApp  Style = "whatsapp"
	StyleFacebook  Style = "facebook"
	StyleMessenger Style = "messenger"
	StyleJoyPixels Style = "joypixels"
	StyleOpenmoji  Style = "openmoji"
	StyleEmojidex  Style = "emojidex"
	StyleMozilla   Style = "mozilla"
	StyleTwemoji   Style = "twemoji"
	StyleTwitter   Style = "twitter"
)

// styles is the set of valid styles.
var styles = map[Style]struct{}{
	StyleApple:     {},
	StyleGoogle:    {},
	StyleMicrosoft: {},
	StyleSamsung:   {},
	StyleWhatsApp:  {},
	StyleFacebook:  {},
	StyleMessenger: {},
	StyleJoyPixels: {},
	StyleOpenmoji:  {},
	StyleEmojidex:  {},
	StyleMozilla:   {},
	StyleTwemoji:   {},
	StyleTwitter:   {},
}

// String returns the CDN path segment for the style.
func (s Style) String() string {
	return string(s)
}

// Valid reports whether the style is one the CDN recognizes.
func (s Style) Valid() bool {
	_, ok := styles[s]
	return ok
}
