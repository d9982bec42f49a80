package mdtok

import "unicode"

// appendInline splits payload into inline-style markers and text runs.
// Markers are taken longest first and emitted as seen; pairing and nesting
// are left to the consumer. Inside an inline code span only the closing
// backtick is a marker. A plain line opening with a code fence yields Code
// followed by the rest of the line, separator included.
func appendInline(tokens []Token, payload string, plain bool) []Token {
	if payload == "" {
		return append(tokens, TextToken(""))
	}
	if plain && codeRe.MatchString(payload) {
		tokens = append(tokens, MarkerToken(KindCode))
		if info := payload[len(CodeFence):]; info != "" {
			tokens = append(tokens, TextToken(info))
		}
		return tokens
	}
	runes := []rune(payload)
	var text []rune
	flush := func() {
		if len(text) > 0 {
			tokens = append(tokens, TextToken(string(text)))
			text = text[:0]
		}
	}
	inCode := false
	for i := 0; i < len(runes); {
		if inCode {
			if runes[i] == '`' {
				flush()
				tokens = append(tokens, MarkerToken(KindInlineCode))
				inCode = false
			} else {
				text = append(text, runes[i])
			}
			i++
			continue
		}
		kind, n := matchInlineMarker(runes, i)
		if n == 0 {
			text = append(text, runes[i])
			i++
			continue
		}
		flush()
		tokens = append(tokens, MarkerToken(kind))
		inCode = kind == KindInlineCode
		i += n
	}
	flush()
	return tokens
}

// matchInlineMarker returns the marker starting at i and its length in
// runes, or a zero length when none applies.
func matchInlineMarker(runes []rune, i int) (Kind, int) {
	for _, m := range inlineMarkers {
		if !hasRunePrefix(runes[i:], m.spelling) {
			continue
		}
		if m.kind == KindUnderline && intraword(runes, i) {
			return 0, 0
		}
		return m.kind, len(m.spelling)
	}
	return 0, 0
}

func hasRunePrefix(runes []rune, prefix string) bool {
	if len(prefix) > len(runes) {
		return false
	}
	for j := 0; j < len(prefix); j++ {
		if runes[j] != rune(prefix[j]) {
			return false
		}
	}
	return true
}

// intraword reports whether the rune at i sits between two word runes.
func intraword(runes []rune, i int) bool {
	if i == 0 || i+1 >= len(runes) {
		return false
	}
	return isWordRune(runes[i-1]) && isWordRune(runes[i+1])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
