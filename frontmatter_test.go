package mdtok

import "testing"

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "yaml", src: "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n", want: "\n# Hello\n"},
		{name: "toml", src: "+++\ntitle = \"Post\"\n+++\n# Hello\n", want: "# Hello\n"},
		{name: "json", src: ";;;\n{\"title\": \"Post\"}\n;;;\n# Hello\n", want: "# Hello\n"},
		{name: "crlf", src: "---\r\ntitle: Post\r\n---\r\nBody", want: "Body"},
		{name: "bom", src: "\xEF\xBB\xBF---\ntitle: Post\n---\nBody", want: "Body"},
		{name: "unclosed", src: "---\ntitle: Post\n\n# Hello\n", want: "---\ntitle: Post\n\n# Hello\n"},
		{name: "no metadata", src: "---\n# Keep\n---\n\nTail\n", want: "---\n# Keep\n---\n\nTail\n"},
		{name: "not at start", src: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n", want: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n"},
		{name: "only delimiter", src: "---", want: "---"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := string(StripFrontMatter([]byte(tc.src))); got != tc.want {
				t.Fatalf("StripFrontMatter(%q)\nwant: %q\n got: %q", tc.src, tc.want, got)
			}
		})
	}
}
