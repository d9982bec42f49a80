package mdtok

import "regexp"

// Marker spellings recognized by the scanner.
const (
	H1 = "#"
	H2 = "##"
	H3 = "###"
	H4 = "####"
	H5 = "#####"
	H6 = "######"

	UnorderedListMarker = "-"
	UnorderedListAlt    = "*"
	QuoteMarker         = ">"
	UnderlineMarker     = "_"
	StrongMarker        = "**"
	ItalicMarker        = "*"
	StrongItalicMarker  = "***"
	InlineCodeMarker    = "`"
	CodeFence           = "```"
)

// Line patterns for constructs matched against the start of a line.
const (
	OrderedListPattern   = `^\d+\.\s`
	UnorderedListPattern = `^[-*]\s`
	QuotePattern         = `^>\s`
	CodePattern          = "^```"
)

var (
	orderedListRe   = regexp.MustCompile(OrderedListPattern)
	unorderedListRe = regexp.MustCompile(UnorderedListPattern)
	quoteRe         = regexp.MustCompile(QuotePattern)
	codeRe          = regexp.MustCompile(CodePattern)
)

var headerSpellings = [...]string{"", H1, H2, H3, H4, H5, H6}

// inlineMarkers is ordered longest first; the inline scan takes the first
// match at each position.
var inlineMarkers = [...]struct {
	spelling string
	kind     Kind
}{
	{StrongItalicMarker, KindStrongItalic},
	{StrongMarker, KindStrong},
	{ItalicMarker, KindItalic},
	{InlineCodeMarker, KindInlineCode},
	{UnderlineMarker, KindUnderline},
}

// MatchLine reports the block kind a line opens according to the line
// patterns, without running the scanner. Header lines report their level.
// Lines matching no pattern report KindText.
func MatchLine(line string) Kind {
	switch {
	case codeRe.MatchString(line):
		return KindCode
	case orderedListRe.MatchString(line):
		return KindOrderedList
	case unorderedListRe.MatchString(line):
		return KindUnorderedList
	case quoteRe.MatchString(line):
		return KindQuote
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if tok, ok := HeaderToken(level); ok {
		return tok.Kind
	}
	return KindText
}
