package asciinum

import (
	"errors"
	"strconv"
)

// Kind identifies why a span could not be decoded.
type Kind uint8

const (
	// KindEmpty means the span had no digits: zero length, or a lone '-'.
	KindEmpty Kind = iota + 1
	// KindInvalidChar means a byte of the digit span is not '0'..'9'.
	KindInvalidChar
	// KindOverflow means the value does not fit the target width.
	KindOverflow
	// KindBounds means off and length don't describe a range of the input.
	KindBounds
)

var (
	ErrEmpty       = errors.New("asciinum: empty input")
	ErrInvalidChar = errors.New("asciinum: invalid character")
	ErrOverflow    = errors.New("asciinum: value out of range")
	ErrBounds      = errors.New("asciinum: span out of bounds")
)

// String returns a stable label for the kind.
func (kind Kind) String() string {
	switch kind {
	case KindEmpty:
		return "empty input"
	case KindInvalidChar:
		return "invalid character"
	case KindOverflow:
		return "value out of range"
	case KindBounds:
		return "span out of bounds"
	default:
		return "unknown"
	}
}

// NumError records a failed decode. Offset is the absolute index into
// the input of the byte that failed, or the span offset when the span
// itself is unusable.
type NumError struct {
	Kind   Kind
	Width  int
	Offset int
	// Char is the offending byte, set for KindInvalidChar only.
	Char byte
}

func (err *NumError) Error() string {
	msg := "asciinum: parsing int" + strconv.Itoa(err.Width) + ": "
	if err.Kind == KindInvalidChar {
		msg += "invalid character " + strconv.QuoteRuneToASCII(rune(err.Char))
	} else {
		msg += err.Kind.String()
	}
	return msg + " at offset " + strconv.Itoa(err.Offset)
}

// Unwrap returns the sentinel for the kind, so errors.Is(err, ErrOverflow)
// and friends work.
func (err *NumError) Unwrap() error {
	switch err.Kind {
	case KindEmpty:
		return ErrEmpty
	case KindInvalidChar:
		return ErrInvalidChar
	case KindOverflow:
		return ErrOverflow
	case KindBounds:
		return ErrBounds
	}
	return nil
}

func errEmpty(width, off int) error {
	return &NumError{Kind: KindEmpty, Width: width, Offset: off}
}

func errChar(width, pos int, char byte) error {
	return &NumError{Kind: KindInvalidChar, Width: width, Offset: pos, Char: char}
}

func errOverflow(width, pos int) error {
	return &NumError{Kind: KindOverflow, Width: width, Offset: pos}
}

func errBounds(width, off int) error {
	return &NumError{Kind: KindBounds, Width: width, Offset: off}
}
