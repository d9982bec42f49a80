package mdtok

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// OverflowPolicy decides what happens to a run of more than six '#'.
type OverflowPolicy uint8

const (
	// OverflowText emits the whole line, '#' run included, as plain text.
	OverflowText OverflowPolicy = iota
	// OverflowSkip drops the '#' run and resumes scanning after it.
	OverflowSkip
	// OverflowFail stops the scan with ErrHeaderLevel.
	OverflowFail
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowText:
		return "text"
	case OverflowSkip:
		return "skip"
	case OverflowFail:
		return "fail"
	}
	return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
}

// ParseOverflowPolicy maps "text", "skip" or "fail" to a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return OverflowText, nil
	case "skip":
		return OverflowSkip, nil
	case "fail":
		return OverflowFail, nil
	}
	return OverflowText, fmt.Errorf("unknown header overflow policy %q: expected text|skip|fail", s)
}

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	overflow     OverflowPolicy
	keepTrailing bool
	inlineStyles bool
	orderedLists bool
	tracer       tracing.Trace
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer()
	}
	return cfg
}

// WithHeaderOverflow sets the policy for '#' runs longer than six.
func WithHeaderOverflow(p OverflowPolicy) Option {
	return func(cfg *config) {
		cfg.overflow = p
	}
}

// WithPreserveTrailingSpace keeps trailing horizontal whitespace in text
// payloads instead of trimming it.
func WithPreserveTrailingSpace(enabled bool) Option {
	return func(cfg *config) {
		cfg.keepTrailing = enabled
	}
}

// WithInlineStyles enables splitting text payloads into inline-style
// markers (strong, italic, underline, inline code, code fence) and text runs.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// WithOrderedLists enables recognition of "1. item" lines.
func WithOrderedLists(enabled bool) Option {
	return func(cfg *config) {
		cfg.orderedLists = enabled
	}
}

// WithTracer routes diagnostics to t instead of the TraceKey channel.
func WithTracer(t tracing.Trace) Option {
	return func(cfg *config) {
		cfg.tracer = t
	}
}
