package email

import "strings"

// EscapeText escapes text for interpolation into HTML element content or
// non-URL attribute values. It maps & < > " ' to their entity forms and is
// applied per code point, so multi-byte text passes through unchanged.
func EscapeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeURL prepares a value for use inside an href attribute. Blank input
// yields the inert placeholder "#" so a button never renders with an empty
// target. This is a defensive placeholder, not a security boundary: it does
// not validate the URL, and callers must not feed it untrusted scheme values.
func EscapeURL(url string) string {
	if strings.TrimSpace(url) == "" {
		return "#"
	}
	return url
}
