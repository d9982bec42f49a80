package mdtok

import (
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestTokenizeRequest(t *testing.T) {
	tokens, err := Tokenize(TokenizeRequest{
		Reader:           strings.NewReader("---\ntitle: x\n---\n# Hi\n"),
		StripFrontMatter: true,
		Validate:         true,
	})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []Token{MarkerToken(KindH1), TextToken("Hi"), Newline}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected tokens %v", tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: want %v, got %v", i, want[i], tokens[i])
		}
	}
}

func TestTokenizeRequestKeepsFrontMatterWhenAsked(t *testing.T) {
	tokens, err := Tokenize(TokenizeRequest{Reader: strings.NewReader("---\na: b\n---\n")})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) == 0 || tokens[0].Kind != KindUnorderedList {
		t.Fatalf("expected front matter to be scanned, got %v", tokens)
	}
}

func TestTokenizeRequestErrors(t *testing.T) {
	if _, err := Tokenize(TokenizeRequest{}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if _, err := Tokenize(TokenizeRequest{Reader: failingReader{}}); err == nil || !strings.Contains(err.Error(), "tokenize: read: boom") {
		t.Fatalf("expected read error, got %v", err)
	}
	_, err := Tokenize(TokenizeRequest{Reader: strings.NewReader("a\x00b"), Validate: true})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	tokens, err := Tokenize(TokenizeRequest{Reader: strings.NewReader("a\x00b")})
	if err != nil || len(tokens) != 1 || tokens[0].Text != "a\x00b" {
		t.Fatalf("unvalidated input should scan: %v %v", tokens, err)
	}
	_, err = Tokenize(TokenizeRequest{
		Reader:  strings.NewReader("########"),
		Options: []Option{WithHeaderOverflow(OverflowFail)},
	})
	if !errors.Is(err, ErrHeaderLevel) {
		t.Fatalf("expected ErrHeaderLevel, got %v", err)
	}
}

func TestPrepareSource(t *testing.T) {
	src, err := PrepareSource([]byte("---\na: b\n---\nbody\n"), true, true)
	if err != nil || string(src) != "body\n" {
		t.Fatalf("unexpected prepared source %q (%v)", src, err)
	}
	if _, err := PrepareSource([]byte("a\x00b"), false, true); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	src, err = PrepareSource([]byte("---\na: b\n---\n"), false, false)
	if err != nil || string(src) != "---\na: b\n---\n" {
		t.Fatalf("source should be untouched: %q (%v)", src, err)
	}
}

func TestJoinSourcesSeparatesLines(t *testing.T) {
	cases := []struct {
		name    string
		sources []string
		want    string
	}{
		{name: "missing break", sources: []string{"# one", "> two"}, want: "# one\n> two"},
		{name: "existing break", sources: []string{"# one\n", "> two\n"}, want: "# one\n> two\n"},
		{name: "crlf", sources: []string{"a\r\n", "b"}, want: "a\r\nb"},
		{name: "empty skipped", sources: []string{"a", "", "b"}, want: "a\nb"},
		{name: "none", want: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			parts := make([][]byte, 0, len(tc.sources))
			for _, s := range tc.sources {
				parts = append(parts, []byte(s))
			}
			if got := string(JoinSources(parts...)); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
	tokens, err := TokenizeString(string(JoinSources([]byte("# one"), []byte("- two"))))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) != 5 || tokens[3].Kind != KindUnorderedList {
		t.Fatalf("second source should start its own line: %v", tokens)
	}
}
