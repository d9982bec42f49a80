package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdtok"
)

// variants pairs a golden suffix with the options it is generated with.
var variants = []struct {
	name string
	opts []mdtok.Option
}{
	{name: "default"},
	{name: "inline", opts: []mdtok.Option{mdtok.WithInlineStyles(true), mdtok.WithOrderedLists(true)}},
}

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		for _, v := range variants {
			tokens, err := mdtok.Tokenize(mdtok.TokenizeRequest{
				Reader:           bytes.NewReader(src),
				StripFrontMatter: true,
				Validate:         true,
				Options:          v.opts,
			})
			if err != nil {
				fatalf("tokenize %s (%s): %v", path, v.name, err)
			}
			var out bytes.Buffer
			if err := mdtok.WriteTokens(&out, tokens, mdtok.DumpOptions{}); err != nil {
				fatalf("dump %s (%s): %v", path, v.name, err)
			}
			goldenPath := goldenTokensPath(path, v.name)
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func goldenTokensPath(mdPath string, variant string) string {
	return strings.TrimSuffix(mdPath, ".md") + "." + variant + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
