package mdtok

import (
	"os"
	"strings"
	"testing"
)

func readSample(tb testing.TB, name string) string {
	tb.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		tb.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestTokenizeAllocations(t *testing.T) {
	src := readSample(t, "basic.md")
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = TokenizeString(src)
	})
	if allocs > 200 {
		t.Fatalf("too many allocations per TokenizeString: got %.2f", allocs)
	}
}

func BenchmarkTokenize(b *testing.B) {
	samples := map[string]string{
		"basic": readSample(b, "basic.md"),
		"large": strings.Repeat(readSample(b, "basic.md"), 200),
	}
	for name, src := range samples {
		src := src
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				_, _ = TokenizeString(src)
			}
		})
	}
}

func BenchmarkTokenizeInline(b *testing.B) {
	src := strings.Repeat(readSample(b, "basic.md"), 200)
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		_, _ = TokenizeString(src, WithInlineStyles(true), WithOrderedLists(true))
	}
}
