package mdtok

import "strconv"

// Kind identifies the syntactic role of a Token.
type Kind uint8

const (
	// KindText is a literal text run. A newline is a text token holding "\n".
	KindText Kind = iota
	KindH1
	KindH2
	KindH3
	KindH4
	KindH5
	KindH6
	// KindOrderedList marks an ordered list item ("1. "). Its Text holds the
	// item number as written.
	KindOrderedList
	// KindUnorderedList marks an unordered list item ("- " or "* ").
	KindUnorderedList
	// KindQuote marks a quote line ("> ").
	KindQuote
	KindUnderline
	KindStrong
	KindItalic
	KindStrongItalic
	KindInlineCode
	// KindCode marks a fenced code delimiter.
	KindCode
)

var kindNames = [...]string{
	KindText:          "Text",
	KindH1:            "H1",
	KindH2:            "H2",
	KindH3:            "H3",
	KindH4:            "H4",
	KindH5:            "H5",
	KindH6:            "H6",
	KindOrderedList:   "OrderedList",
	KindUnorderedList: "UnorderedList",
	KindQuote:         "Quote",
	KindUnderline:     "Underline",
	KindStrong:        "Strong",
	KindItalic:        "Italic",
	KindStrongItalic:  "StrongItalic",
	KindInlineCode:    "InlineCode",
	KindCode:          "Code",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsHeader reports whether k is one of the six header markers.
func (k Kind) IsHeader() bool {
	return k >= KindH1 && k <= KindH6
}

// HeaderLevel returns 1-6 for header kinds and 0 otherwise.
func (k Kind) HeaderLevel() int {
	if !k.IsHeader() {
		return 0
	}
	return int(k-KindH1) + 1
}

// Token is one unit of recognized Markdown syntax. Text is set for KindText
// and carries the item number of KindOrderedList.
type Token struct {
	Kind Kind
	Text string
}

// Newline is the token emitted for "\n" and "\r\n".
var Newline = Token{Kind: KindText, Text: "\n"}

// TextToken returns a text token holding s.
func TextToken(s string) Token {
	return Token{Kind: KindText, Text: s}
}

// MarkerToken returns a bare marker token of kind k.
func MarkerToken(k Kind) Token {
	return Token{Kind: k}
}

// OrderedListToken returns the ordered-list marker for item number n
// ("3" for "3. ").
func OrderedListToken(n string) Token {
	return Token{Kind: KindOrderedList, Text: n}
}

// HeaderToken returns the header marker for level, or false if level is
// outside 1-6.
func HeaderToken(level int) (Token, bool) {
	if level < 1 || level > 6 {
		return Token{}, false
	}
	return Token{Kind: KindH1 + Kind(level-1)}, true
}

// IsNewline reports whether t is the newline text token.
func (t Token) IsNewline() bool {
	return t.Kind == KindText && t.Text == "\n"
}

func (t Token) String() string {
	switch {
	case t.Kind == KindText:
		return "Text(" + strconv.Quote(t.Text) + ")"
	case t.Text != "":
		return t.Kind.String() + "(" + t.Text + ")"
	}
	return t.Kind.String()
}
