package mdtok

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	kindColumn   = 13
	textColumnAt = 4 + 1 + kindColumn + 1
	minTextWidth = 8
	ansiReset    = "\x1b[0m"
)

// Style is an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles colors the kind column of a token listing.
type Styles struct {
	Header  Style
	Block   Style
	Inline  Style
	Text    Style
	Newline Style
}

// DefaultStyles returns the styles used for color dumps.
func DefaultStyles() Styles {
	return Styles{
		Header:  style("\x1b[1m", "\x1b[35m"),
		Block:   style("\x1b[36m"),
		Inline:  style("\x1b[33m"),
		Text:    style(),
		Newline: style("\x1b[2m"),
	}
}

func style(prefixes ...string) Style {
	return Style{Prefix: strings.Join(prefixes, "")}
}

func (s Styles) forToken(tok Token) Style {
	switch {
	case tok.IsNewline():
		return s.Newline
	case tok.Kind == KindText:
		return s.Text
	case tok.Kind.IsHeader():
		return s.Header
	case tok.Kind.isBlockMarker() || tok.Kind == KindCode:
		return s.Block
	}
	return s.Inline
}

// DumpOptions configures WriteTokens.
type DumpOptions struct {
	// Width truncates each line to this many columns; 0 disables truncation.
	Width int
	// Styles colors the kind column when set.
	Styles *Styles
}

// WriteTokens writes one line per token: index, kind and, for tokens that
// carry text, the quoted payload.
func WriteTokens(w io.Writer, tokens []Token, opts DumpOptions) error {
	bw := bufio.NewWriter(w)
	limit := 0
	if opts.Width > 0 {
		limit = opts.Width - textColumnAt
		if limit < minTextWidth {
			limit = minTextWidth
		}
	}
	for i, tok := range tokens {
		kind := fmt.Sprintf("%-*s", kindColumn, tok.Kind)
		if opts.Styles != nil {
			if prefix := opts.Styles.forToken(tok).Prefix; prefix != "" {
				kind = prefix + kind + ansiReset
			}
		}
		line := fmt.Sprintf("%4d %s", i, kind)
		if tok.Kind == KindText || tok.Text != "" {
			text := strconv.Quote(tok.Text)
			if limit > 0 {
				text = truncateWithEllipsis(text, limit)
			}
			line += " " + text
		}
		if _, err := bw.WriteString(strings.TrimRight(line, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// truncateWithEllipsis cuts text to at most limit terminal columns.
func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}

type jsonToken struct {
	Kind string  `json:"kind"`
	Text *string `json:"text,omitempty"`
}

// MarshalJSON encodes t as {"kind":"H1"} or {"kind":"Text","text":"..."}.
// An ordered-list marker carries its number as text.
func (t Token) MarshalJSON() ([]byte, error) {
	jt := jsonToken{Kind: t.Kind.String()}
	if t.Kind == KindText || t.Text != "" {
		text := t.Text
		jt.Text = &text
	}
	return json.Marshal(jt)
}

// MarshalTokensJSON encodes tokens as an indented JSON array.
func MarshalTokensJSON(tokens []Token) ([]byte, error) {
	if tokens == nil {
		tokens = []Token{}
	}
	return json.MarshalIndent(tokens, "", "  ")
}
