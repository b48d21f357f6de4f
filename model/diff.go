package model

import "strings"

type DiffOp int

const (
	Same DiffOp = iota
	Plus
	Minus
)

func (op DiffOp) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return "="
	}
}

func diffOp(from, to bool) DiffOp {
	switch {
	case from == to:
		return Same
	case to:
		return Plus
	default:
		return Minus
	}
}

type PermDiff struct {
	Read    DiffOp
	Write   DiffOp
	Execute DiffOp
}

func (d PermDiff) Changed() bool {
	return d != PermDiff{}
}

// String renders the change as chmod actions, additions first: "+x-w".
func (d PermDiff) String() string {
	ops := [3]DiffOp{d.Read, d.Write, d.Execute}

	var sb strings.Builder
	for _, want := range [2]DiffOp{Plus, Minus} {
		bits := make([]byte, 0, 3)
		for i, op := range ops {
			if op == want {
				bits = append(bits, symbols[i])
			}
		}
		if len(bits) > 0 {
			sb.WriteString(want.String())
			sb.Write(bits)
		}
	}
	return sb.String()
}

type ModeDiff struct {
	User  PermDiff
	Group PermDiff
	Other PermDiff
}

func (d ModeDiff) Changed() bool {
	return d != ModeDiff{}
}

// String renders the change in chmod relative notation, e.g. "u+x,g+w-r".
// An unchanged mode yields an empty string.
func (d ModeDiff) String() string {
	classes := [3]struct {
		who  string
		diff PermDiff
	}{
		{"u", d.User},
		{"g", d.Group},
		{"o", d.Other},
	}

	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c.diff.Changed() {
			parts = append(parts, c.who+c.diff.String())
		}
	}
	return strings.Join(parts, ",")
}
