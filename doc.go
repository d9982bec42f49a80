// Package mdtok splits Markdown text into a flat stream of syntax tokens.
//
// The tokenizer makes a single pass over the input and classifies each line
// by its first character: '#' runs become header markers, '-' and '*' open
// unordered list items, '>' opens quote lines, and everything else is plain
// text. Every marker that carries content is followed by one Text token
// holding the rest of its line, and every line break becomes a Text("\n")
// token. No parse tree is built; consumers read the tokens in order.
//
// Core properties:
//   - Cursor indexes runes, not bytes
//   - No backtracking; every dispatch advances the cursor
//   - Header runs longer than six '#' follow an explicit OverflowPolicy
//   - Scan failures are typed (*ScanError) and wrap a sentinel error
//
// Example:
//
//	tokens, err := mdtok.TokenizeString("# Hello\n- item\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tok := range tokens {
//		fmt.Println(tok)
//	}
//
// Inline styles and ordered lists are off by default and enabled with
// WithInlineStyles and WithOrderedLists.
package mdtok

import "github.com/npillmayer/schuko/tracing"

// TraceKey selects the tracing channel used by the tokenizer unless
// WithTracer overrides it.
const TraceKey = "mdtok.lexer"

func tracer() tracing.Trace {
	return tracing.Select(TraceKey)
}
