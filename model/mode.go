package model

import (
	"io/fs"
	"strings"
)

// Mode holds the permissions of the three classes user, group and other.
type Mode struct {
	User  Perm
	Group Perm
	Other Perm
}

func NewMode(user, group, other Perm) Mode {
	return Mode{User: user, Group: group, Other: other}
}

// ParseModeNum parses a three digit octal mode, e.g. "755".
func ParseModeNum(s string) (Mode, error) {
	if len(s) != 3 {
		return Mode{}, &ModeError{Input: s, Err: syntaxErr(s, -1, ErrInvalidLength)}
	}

	var perms [3]Perm
	for i := range perms {
		p, err := parseDigit(s, i)
		if err != nil {
			return Mode{}, &ModeError{Input: s, Err: err}
		}
		perms[i] = p
	}
	return NewMode(perms[0], perms[1], perms[2]), nil
}

// ParseModeSym parses a nine character symbolic mode, e.g. "rwxr-xr-x".
func ParseModeSym(s string) (Mode, error) {
	if len(s) != 9 {
		return Mode{}, &ModeError{Input: s, Err: syntaxErr(s, -1, ErrInvalidLength)}
	}

	var perms [3]Perm
	for i := range perms {
		p, err := parseSym(s, 3*i)
		if err != nil {
			return Mode{}, &ModeError{Input: s, Err: err}
		}
		perms[i] = p
	}
	return NewMode(perms[0], perms[1], perms[2]), nil
}

// ModeFromFileMode extracts the permission bits of m, ignoring type and special bits.
func ModeFromFileMode(m fs.FileMode) Mode {
	perm := int(m.Perm())
	// digits are always in range after masking
	user, _ := PermFromDigit(perm>>6&7)
	group, _ := PermFromDigit(perm>>3&7)
	other, _ := PermFromDigit(perm & 7)
	return NewMode(user, group, other)
}

func (m Mode) FileMode() fs.FileMode {
	return fs.FileMode(m.User.Digit()<<6 | m.Group.Digit()<<3 | m.Other.Digit())
}

func (m Mode) classes() [3]Perm {
	return [3]Perm{m.User, m.Group, m.Other}
}

func (m Mode) Num() string {
	var sb strings.Builder
	sb.Grow(3)
	for _, p := range m.classes() {
		sb.WriteByte(byte('0' + p.Digit()))
	}
	return sb.String()
}

func (m Mode) Sym() string {
	var sb strings.Builder
	sb.Grow(9)
	for _, p := range m.classes() {
		sb.WriteString(p.Sym())
	}
	return sb.String()
}

func (m Mode) String() string {
	return m.Sym()
}

func (m Mode) Diff(to Mode) ModeDiff {
	return ModeDiff{
		User:  m.User.Diff(to.User),
		Group: m.Group.Diff(to.Group),
		Other: m.Other.Diff(to.Other),
	}
}
