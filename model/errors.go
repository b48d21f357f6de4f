package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrInvalidDigit  = errors.New("invalid octal digit")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidMode   = errors.New("invalid mode")
)

// SyntaxError describes which character of the input could not be parsed.
// Pos is -1 for errors that concern the input as a whole, e.g. its length.
type SyntaxError struct {
	Input string
	Pos   int
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%q: %v", e.Input, e.Err)
	}
	r, _ := utf8.DecodeRuneInString(e.Input[e.Pos:])
	return fmt.Sprintf("%q: %v %q at position %d", e.Input, e.Err, r, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ModeError is returned by the Mode parsers. It matches ErrInvalidMode as well
// as the underlying permission error.
type ModeError struct {
	Input string
	Err   error
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidMode, e.Input, e.Err)
}

func (e *ModeError) Is(target error) bool {
	return target == ErrInvalidMode
}

func (e *ModeError) Unwrap() error {
	return e.Err
}

// InputError is returned by Parse when the input is neither a permission nor a mode.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: malformed permission or mode: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func syntaxErr(input string, pos int, err error) error {
	return &SyntaxError{Input: input, Pos: pos, Err: err}
}
