package mdtok

import (
	"bytes"
	"fmt"
	"io"
)

// TokenizeRequest configures Tokenize.
type TokenizeRequest struct {
	Reader io.Reader
	// StripFrontMatter drops a leading YAML/TOML/JSON front-matter block.
	StripFrontMatter bool
	// Validate rejects invalid UTF-8 and binary input before scanning.
	Validate bool
	Options  []Option
}

// Tokenize reads the whole of req.Reader and scans it. On a scan error the
// tokens produced before the failure are returned alongside it.
func Tokenize(req TokenizeRequest) ([]Token, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("tokenize: reader is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("tokenize: read: %w", err)
	}
	if src, err = PrepareSource(src, req.StripFrontMatter, req.Validate); err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	t := NewTokenizer(string(src), req.Options...)
	err = t.Run()
	return t.Tokens(), err
}

// PrepareSource validates src and strips its front matter, each when asked.
// Callers scanning several documents as one apply it per document.
func PrepareSource(src []byte, stripFrontMatter, validate bool) ([]byte, error) {
	if validate {
		if err := ValidateInput(src); err != nil {
			return nil, err
		}
	}
	if stripFrontMatter {
		src = StripFrontMatter(src)
	}
	return src, nil
}

// JoinSources concatenates documents so that no two of them share a line:
// a line break is inserted after any document not already ending in one.
// Empty documents are skipped.
func JoinSources(sources ...[]byte) []byte {
	var buf bytes.Buffer
	for _, src := range sources {
		if len(src) == 0 {
			continue
		}
		if n := buf.Len(); n > 0 && buf.Bytes()[n-1] != '\n' {
			buf.WriteByte('\n')
		}
		buf.Write(src)
	}
	return buf.Bytes()
}
