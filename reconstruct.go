package mdtok

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Spelling returns the canonical Markdown spelling of a marker kind. Text
// has no spelling.
func (k Kind) Spelling() string {
	switch {
	case k.IsHeader():
		return headerSpellings[k.HeaderLevel()]
	}
	switch k {
	case KindOrderedList:
		return "1."
	case KindUnorderedList:
		return UnorderedListMarker
	case KindQuote:
		return QuoteMarker
	case KindUnderline:
		return UnderlineMarker
	case KindStrong:
		return StrongMarker
	case KindItalic:
		return ItalicMarker
	case KindStrongItalic:
		return StrongItalicMarker
	case KindInlineCode:
		return InlineCodeMarker
	case KindCode:
		return CodeFence
	}
	return ""
}

// isBlockMarker reports whether k opens a line and is separated from its
// content by a space.
func (k Kind) isBlockMarker() bool {
	return k.IsHeader() || k == KindOrderedList || k == KindUnorderedList || k == KindQuote
}

// Reconstruct writes tokens back as Markdown using canonical spellings.
// Ordered-list items keep their number; an unnumbered item is written "1.".
// Block markers are separated from their content by one space; everything
// else is concatenated as is.
func Reconstruct(tokens []Token) string {
	var b strings.Builder
	pendingSpace := false
	for _, tok := range tokens {
		switch {
		case tok.Kind == KindText:
			if pendingSpace && tok.Text != "" && !tok.IsNewline() {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Text)
		case tok.Kind == KindOrderedList && tok.Text != "":
			b.WriteString(tok.Text + ".")
		case tok.Kind.isBlockMarker():
			b.WriteString(tok.Kind.Spelling())
		default:
			if pendingSpace && tok.Kind != KindCode {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Kind.Spelling())
		}
		pendingSpace = tok.Kind.isBlockMarker()
	}
	return b.String()
}

// NormalizeText folds s into the form compared by round-trip checks: NFC,
// "\r\n" as "\n", and every line with its whitespace runs collapsed to one
// space and trimmed at both ends.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
