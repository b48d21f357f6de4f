package model

import "strings"

// Value is either a Perm or a Mode.
type Value interface {
	Num() string
	Sym() string
}

type Format int

const (
	FormatNum Format = iota + 1
	FormatSym
)

func (f Format) String() string {
	switch f {
	case FormatNum:
		return "num"
	case FormatSym:
		return "sym"
	default:
		return "unknown"
	}
}

func (f Format) Render(v Value) string {
	if f == FormatNum {
		return v.Num()
	}
	return v.Sym()
}

// Parse detects whether input is octal or symbolic and whether it denotes a
// single permission or a full mode.
func Parse(input string) (Value, error) {
	v, err := parse(input)
	if err != nil {
		return nil, &InputError{Input: input, Err: err}
	}
	return v, nil
}

func parse(input string) (Value, error) {
	switch {
	case input == "":
		return nil, syntaxErr(input, -1, ErrInvalidLength)
	case onlyOf(input, "rwx-"):
		switch len(input) {
		case 3:
			return value(ParsePermSym(input))
		case 9:
			return value(ParseModeSym(input))
		}
		return nil, syntaxErr(input, -1, ErrInvalidLength)
	case onlyOf(input, "0123456789"):
		switch len(input) {
		case 1:
			return value(ParsePermNum(input))
		case 3:
			return value(ParseModeNum(input))
		}
		return nil, syntaxErr(input, -1, ErrInvalidLength)
	case strings.ContainsAny(input, "0123456789"):
		return nil, syntaxErr(input, strings.IndexFunc(input, notDigit), ErrInvalidDigit)
	default:
		return nil, syntaxErr(input, strings.IndexFunc(input, notSymbol), ErrInvalidSymbol)
	}
}

// value drops the zero value a failed parser returns alongside its error.
func value(v Value, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func onlyOf(s, chars string) bool {
	return strings.Trim(s, chars) == ""
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

func notSymbol(r rune) bool {
	return !strings.ContainsRune("rwx-", r)
}
