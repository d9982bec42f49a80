package mdtok

import "unicode"

// isNewline reports whether a newline boundary ("\n" or "\r\n") starts at i.
func (t *Tokenizer) isNewline(i int) bool {
	if i < 0 || i >= len(t.chars) {
		return false
	}
	switch t.chars[i] {
	case '\n':
		return true
	case '\r':
		return i+1 < len(t.chars) && t.chars[i+1] == '\n'
	}
	return false
}

// isHorizontalSpace reports whether i holds whitespace that does not start a
// newline boundary. A lone '\r' counts as horizontal space.
func (t *Tokenizer) isHorizontalSpace(i int) bool {
	return i < len(t.chars) && unicode.IsSpace(t.chars[i]) && !t.isNewline(i)
}

func (t *Tokenizer) skipHorizontalSpace(i int) int {
	for t.isHorizontalSpace(i) {
		i++
	}
	return i
}

// lineEnd returns the index of the next newline boundary at or after i, or
// the input length.
func (t *Tokenizer) lineEnd(i int) int {
	for i < len(t.chars) && !t.isNewline(i) {
		i++
	}
	return i
}

// span extracts chars[left:right].
func (t *Tokenizer) span(left, right int) (string, error) {
	if left < 0 || right < 0 || left > len(t.chars) || right > len(t.chars) || left > right {
		t.cfg.tracer.Errorf("invalid span [%d, %d) over %d runes", left, right, len(t.chars))
		return "", &ScanError{Err: ErrInvalidRange, Pos: t.ind, Left: left, Right: right}
	}
	return string(t.chars[left:right]), nil
}

// consumeLine is the line primitive shared by every sub-scanner. It skips
// leading horizontal space at from, reads up to the next newline boundary
// and returns the payload together with the boundary index. The newline is
// never consumed. Trailing horizontal space is trimmed from the payload
// unless the tokenizer preserves it.
func (t *Tokenizer) consumeLine(from int) (string, int, error) {
	start := t.skipHorizontalSpace(from)
	end := t.lineEnd(start)
	right := end
	if !t.cfg.keepTrailing {
		for right > start && unicode.IsSpace(t.chars[right-1]) {
			right--
		}
	}
	payload, err := t.span(start, right)
	if err != nil {
		return "", from, err
	}
	return payload, end, nil
}
