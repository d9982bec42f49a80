package mdtok

import "testing"

func TestMatchLine(t *testing.T) {
	cases := map[string]Kind{
		"# h":       KindH1,
		"###### h":  KindH6,
		"####### h": KindText,
		"1. one":    KindOrderedList,
		"10. ten":   KindOrderedList,
		"1.one":     KindText,
		"- item":    KindUnorderedList,
		"* item":    KindUnorderedList,
		"**bold**":  KindText,
		"> quote":   KindQuote,
		">tight":    KindText,
		"```go":     KindCode,
		"plain":     KindText,
		"":          KindText,
	}
	for line, want := range cases {
		if got := MatchLine(line); got != want {
			t.Fatalf("MatchLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestHeaderSpellingsMatchLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		tok, _ := HeaderToken(level)
		if got := tok.Kind.Spelling(); len(got) != level || MatchLine(got+" x") != tok.Kind {
			t.Fatalf("level %d: spelling %q", level, got)
		}
	}
}
