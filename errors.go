package mdtok

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange reports a span extraction with inverted or
	// out-of-bounds indices.
	ErrInvalidRange = errors.New("invalid span range")
	// ErrHeaderLevel reports a run of more than six '#' under OverflowFail.
	ErrHeaderLevel = errors.New("header level out of range")
	// ErrUnexpectedRune reports a sub-scanner invoked on a rune it does not
	// handle.
	ErrUnexpectedRune = errors.New("unexpected rune")
	// ErrNoProgress reports a sub-scanner that returned without moving the
	// cursor.
	ErrNoProgress = errors.New("scanner made no progress")
)

// ScanError describes where a scan failed. Err is one of the sentinel
// errors of this package.
type ScanError struct {
	Err   error
	Pos   int // cursor, in runes
	Left  int // span bounds, only for ErrInvalidRange
	Right int
	Level int // '#' run length, only for ErrHeaderLevel
}

func (e *ScanError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidRange):
		return fmt.Sprintf("%v [%d, %d) at %d", e.Err, e.Left, e.Right, e.Pos)
	case errors.Is(e.Err, ErrHeaderLevel):
		return fmt.Sprintf("%v: level %d at %d", e.Err, e.Level, e.Pos)
	default:
		return fmt.Sprintf("%v at %d", e.Err, e.Pos)
	}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
