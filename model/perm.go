package model

import "strconv"

const (
	bitRead    = 4
	bitWrite   = 2
	bitExecute = 1
)

// Perm is a single read/write/execute triad.
type Perm struct {
	Read    bool
	Write   bool
	Execute bool
}

var (
	PermNone = Perm{}
	PermX    = Perm{Execute: true}
	PermW    = Perm{Write: true}
	PermWX   = Perm{Write: true, Execute: true}
	PermR    = Perm{Read: true}
	PermRX   = Perm{Read: true, Execute: true}
	PermRW   = Perm{Read: true, Write: true}
	PermRWX  = Perm{Read: true, Write: true, Execute: true}
)

// PermFromDigit decomposes an octal digit into its permission bits.
func PermFromDigit(d int) (Perm, error) {
	if d < 0 || d > 7 {
		return Perm{}, ErrInvalidDigit
	}
	return Perm{
		Read:    d&bitRead != 0,
		Write:   d&bitWrite != 0,
		Execute: d&bitExecute != 0,
	}, nil
}

// ParsePermNum parses a single octal digit, e.g. "5".
func ParsePermNum(s string) (Perm, error) {
	if len(s) != 1 {
		return Perm{}, syntaxErr(s, -1, ErrInvalidLength)
	}
	return parseDigit(s, 0)
}

func parseDigit(s string, pos int) (Perm, error) {
	c := s[pos]
	if c < '0' || c > '9' {
		return Perm{}, syntaxErr(s, pos, ErrInvalidDigit)
	}
	p, err := PermFromDigit(int(c - '0'))
	if err != nil {
		return Perm{}, syntaxErr(s, pos, err)
	}
	return p, nil
}

// ParsePermSym parses a symbolic triad, e.g. "r-x".
func ParsePermSym(s string) (Perm, error) {
	if len(s) != 3 {
		return Perm{}, syntaxErr(s, -1, ErrInvalidLength)
	}
	return parseSym(s, 0)
}

// parseSym reads the triad starting at offset so that errors point into the full input.
func parseSym(s string, offset int) (Perm, error) {
	var (
		p     Perm
		flags = [3]*bool{&p.Read, &p.Write, &p.Execute}
	)
	for i, flag := range flags {
		switch s[offset+i] {
		case symbols[i]:
			*flag = true
		case '-':
		default:
			return Perm{}, syntaxErr(s, offset+i, ErrInvalidSymbol)
		}
	}
	return p, nil
}

const symbols = "rwx"

func (p Perm) Digit() int {
	d := 0
	if p.Read {
		d += bitRead
	}
	if p.Write {
		d += bitWrite
	}
	if p.Execute {
		d += bitExecute
	}
	return d
}

func (p Perm) Num() string {
	return strconv.Itoa(p.Digit())
}

func (p Perm) Sym() string {
	b := []byte("---")
	for i, set := range [3]bool{p.Read, p.Write, p.Execute} {
		if set {
			b[i] = symbols[i]
		}
	}
	return string(b)
}

func (p Perm) String() string {
	return p.Sym()
}

// Diff reports, per bit, how p has to change to become to.
func (p Perm) Diff(to Perm) PermDiff {
	return PermDiff{
		Read:    diffOp(p.Read, to.Read),
		Write:   diffOp(p.Write, to.Write),
		Execute: diffOp(p.Execute, to.Execute),
	}
}
