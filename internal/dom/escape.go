package dom

import "strings"

// Escape converts a raw string payload into its JSON-string-safe form.
// Quotes, backslashes and forward slashes are backslash-prefixed; backspace,
// form feed, newline, carriage return and tab become their two-character
// escapes. Every other byte, including other control codes and non-ASCII
// sequences, passes through unchanged. The transform is pure and total and
// never shortens its input.
func Escape(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '"', '\\', '/':
			out.WriteByte('\\')
			out.WriteByte(c)
		case '\b':
			out.WriteString(`\b`)
		case '\f':
			out.WriteString(`\f`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

// appendEscaped appends the quoted, escaped form of raw to dst. It is the
// serialization path shared by String values and Object keys.
func appendEscaped(dst []byte, raw string) []byte {
	dst = append(dst, '"')
	dst = append(dst, Escape(raw)...)
	return append(dst, '"')
}
