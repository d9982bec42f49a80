package mdtok

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput rejects src if it is not valid UTF-8 or looks binary: it
// contains NUL, or at least maxControlPct percent of a sample of
// minBinarySample bytes or more are control bytes. The Tokenizer itself
// accepts anything; validation is for callers reading untrusted files.
func ValidateInput(src []byte) error {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		i += size
	}
	control := 0
	for i, b := range src {
		if b == 0x00 {
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, i)
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%w: %d of %d bytes are control bytes", ErrBinaryInput, control, len(src))
	}
	return nil
}

// isControlByte is true for C0 controls other than \t \n \v \f \r, and DEL.
func isControlByte(b byte) bool {
	return b < 0x09 || (b > 0x0D && b < 0x20) || b == 0x7F
}
