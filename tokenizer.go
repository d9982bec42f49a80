package mdtok

import (
	"fmt"
	"unicode"
)

// Tokenizer turns a complete Markdown text into tokens in a single pass.
//
// The input is held as runes, so the cursor counts Unicode scalar values,
// not bytes. A Tokenizer is driven once by Run and is not reusable.
type Tokenizer struct {
	chars  []rune
	ind    int
	tokens []Token
	cfg    config
}

// NewTokenizer prepares a Tokenizer over text. Any text is accepted.
func NewTokenizer(text string, opts ...Option) *Tokenizer {
	return &Tokenizer{
		chars: []rune(text),
		cfg:   newConfig(opts),
	}
}

// TokenizeString scans text and returns its tokens. On error the tokens
// produced before the failure are returned alongside it.
func TokenizeString(text string, opts ...Option) ([]Token, error) {
	t := NewTokenizer(text, opts...)
	err := t.Run()
	return t.Tokens(), err
}

// Tokens returns the tokens produced so far.
func (t *Tokenizer) Tokens() []Token {
	return t.tokens
}

// Pos returns the cursor in runes.
func (t *Tokenizer) Pos() int {
	return t.ind
}

// Len returns the input length in runes.
func (t *Tokenizer) Len() int {
	return len(t.chars)
}

// Run drains the input into tokens. It stops at the first scan error.
func (t *Tokenizer) Run() error {
	for t.ind < len(t.chars) {
		before := t.ind
		var err error
		switch r := t.chars[t.ind]; {
		case r == '#':
			err = t.scanHeader()
		case r == '-' || r == '*':
			err = t.scanUnorderedList()
		case r == '>':
			err = t.scanQuote()
		case t.isNewline(t.ind):
			err = t.scanNewline()
		case t.cfg.orderedLists && unicode.IsDigit(r) && t.atOrderedItem():
			err = t.scanOrderedList()
		default:
			err = t.scanText()
		}
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}
		if t.ind <= before {
			return fmt.Errorf("tokenize: %w", &ScanError{Err: ErrNoProgress, Pos: before})
		}
	}
	t.cfg.tracer.Debugf("scanned %d runes into %d tokens", len(t.chars), len(t.tokens))
	return nil
}

func (t *Tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
}

// emitPayload appends a line payload as text, split into inline markers
// when inline styles are enabled.
func (t *Tokenizer) emitPayload(payload string, plain bool) {
	if t.cfg.inlineStyles {
		t.tokens = appendInline(t.tokens, payload, plain)
		return
	}
	t.emit(TextToken(payload))
}

func (t *Tokenizer) scanHeader() error {
	start := t.ind
	end := start
	for end < len(t.chars) && t.chars[end] == '#' {
		end++
	}
	level := end - start
	header, ok := HeaderToken(level)
	if !ok {
		return t.headerOverflow(start, end)
	}
	t.emit(header)
	payload, next, err := t.consumeLine(end)
	if err != nil {
		return err
	}
	t.emitPayload(payload, false)
	t.ind = next
	return nil
}

// headerOverflow handles a '#' run in chars[start:end] longer than six.
func (t *Tokenizer) headerOverflow(start, end int) error {
	level := end - start
	switch t.cfg.overflow {
	case OverflowSkip:
		t.cfg.tracer.Infof("header level %d at %d: dropping '#' run", level, start)
		t.ind = end
		return nil
	case OverflowFail:
		t.cfg.tracer.Errorf("header level %d at %d", level, start)
		return &ScanError{Err: ErrHeaderLevel, Pos: start, Level: level}
	}
	t.cfg.tracer.Infof("header level %d at %d: scanning line as text", level, start)
	payload, next, err := t.consumeLine(start)
	if err != nil {
		return err
	}
	t.emitPayload(payload, true)
	t.ind = next
	return nil
}

func (t *Tokenizer) scanUnorderedList() error {
	if r := t.chars[t.ind]; r != '-' && r != '*' {
		return &ScanError{Err: ErrUnexpectedRune, Pos: t.ind}
	}
	return t.scanMarkedLine(MarkerToken(KindUnorderedList), t.ind+1)
}

func (t *Tokenizer) scanQuote() error {
	if t.chars[t.ind] != '>' {
		return &ScanError{Err: ErrUnexpectedRune, Pos: t.ind}
	}
	return t.scanMarkedLine(MarkerToken(KindQuote), t.ind+1)
}

// atOrderedItem reports whether the cursor starts "<digits>. ".
func (t *Tokenizer) atOrderedItem() bool {
	end := t.lineEnd(t.ind)
	if end < len(t.chars) {
		end++ // the pattern wants trailing whitespace; include the newline
	}
	return orderedListRe.MatchString(string(t.chars[t.ind:end]))
}

func (t *Tokenizer) scanOrderedList() error {
	i := t.ind
	for i < len(t.chars) && unicode.IsDigit(t.chars[i]) {
		i++
	}
	if i == t.ind || i >= len(t.chars) || t.chars[i] != '.' {
		return &ScanError{Err: ErrUnexpectedRune, Pos: t.ind}
	}
	number, err := t.span(t.ind, i)
	if err != nil {
		return err
	}
	return t.scanMarkedLine(OrderedListToken(number), i+1)
}

// scanMarkedLine emits marker and the rest of the line from contentAt.
func (t *Tokenizer) scanMarkedLine(marker Token, contentAt int) error {
	t.emit(marker)
	payload, next, err := t.consumeLine(contentAt)
	if err != nil {
		return err
	}
	t.emitPayload(payload, false)
	t.ind = next
	return nil
}

func (t *Tokenizer) scanText() error {
	payload, next, err := t.consumeLine(t.ind)
	if err != nil {
		return err
	}
	if payload != "" {
		t.emitPayload(payload, true)
	}
	t.ind = next
	return nil
}

func (t *Tokenizer) scanNewline() error {
	switch {
	case t.chars[t.ind] == '\n':
		t.ind++
	case t.chars[t.ind] == '\r' && t.ind+1 < len(t.chars) && t.chars[t.ind+1] == '\n':
		t.ind += 2
	default:
		return &ScanError{Err: ErrUnexpectedRune, Pos: t.ind}
	}
	t.emit(Newline)
	return nil
}
