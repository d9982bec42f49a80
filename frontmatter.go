package mdtok

import "bytes"

// StripFrontMatter removes a front-matter block from the start of src. A
// block opens with a line of "---" (YAML), "+++" (TOML) or ";;;" (JSON),
// must continue with a line that looks like metadata and must be closed by
// the same delimiter. Anything else is returned unchanged.
func StripFrontMatter(src []byte) []byte {
	open, next := cutLine(src, 0)
	delim, ok := frontMatterDelimiter(open)
	if !ok {
		return src
	}
	second, _ := cutLine(src, next)
	if !metadataLikely(second) {
		return src
	}
	for idx := next; idx < len(src); {
		line, after := cutLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[after:]
		}
		idx = after
	}
	return src
}

// cutLine returns the line starting at start without its line ending, and
// the index just past the ending.
func cutLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(line, []byte("\xEF\xBB\xBF")))
	for _, delim := range [...]string{"---", "+++", ";;;"} {
		if string(trimmed) == delim {
			return []byte(delim), true
		}
	}
	return nil, false
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

func trimCR(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte("\r"))
}
