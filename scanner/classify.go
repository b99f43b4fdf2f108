package scanner

// Classification of input bytes. Only ASCII is considered; every byte outside
// of the classes below is not part of any token, with the exception of
// bytes within quoted strings.

// IsWhitespace is true for space, tab and newline.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// IsDigit is true for '0'…'9'.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlpha is true for 'a'…'z' and 'A'…'Z'.
func IsAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsQuote is true for the two quote characters starting a string.
func IsQuote(c byte) bool {
	return c == '"' || c == '\''
}
