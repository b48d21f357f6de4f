package model

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermFromDigit(t *testing.T) {
	t.Parallel()
	want := []Perm{PermNone, PermX, PermW, PermWX, PermR, PermRX, PermRW, PermRWX}
	for d := 0; d <= 7; d++ {
		p, err := PermFromDigit(d)
		require.NoError(t, err)
		require.Equal(t, want[d], p)
		require.Equal(t, d, p.Digit())
	}

	for _, d := range []int{-1, 8, 9, 64} {
		_, err := PermFromDigit(d)
		require.ErrorIs(t, err, ErrInvalidDigit, "digit %d", d)
	}
}

func TestPermRoundTrip(t *testing.T) {
	t.Parallel()
	for d := 0; d <= 7; d++ {
		p, err := PermFromDigit(d)
		require.NoError(t, err)

		fromNum, err := ParsePermNum(p.Num())
		require.NoError(t, err)
		require.Equal(t, p, fromNum)

		fromSym, err := ParsePermSym(p.Sym())
		require.NoError(t, err)
		require.Equal(t, p, fromSym)
		require.Len(t, p.Sym(), 3)
	}
}

func TestParsePermSym(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input string
		want  Perm
		err   error
		pos   int
	}{
		{input: "rwx", want: PermRWX},
		{input: "r-x", want: PermRX},
		{input: "-w-", want: PermW},
		{input: "---", want: PermNone},
		{input: "wrx", err: ErrInvalidSymbol, pos: 0},
		{input: "rxw", err: ErrInvalidSymbol, pos: 1},
		{input: "rwz", err: ErrInvalidSymbol, pos: 2},
		{input: "", err: ErrInvalidLength, pos: -1},
		{input: "rw", err: ErrInvalidLength, pos: -1},
		{input: "rwx-", err: ErrInvalidLength, pos: -1},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			p, err := ParsePermSym(tc.input)
			if tc.err == nil {
				require.NoError(t, err)
				require.Equal(t, tc.want, p)
				return
			}
			require.ErrorIs(t, err, tc.err)
			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			require.Equal(t, tc.pos, serr.Pos)
		})
	}
}

func TestParsePermNum(t *testing.T) {
	t.Parallel()
	for d := 0; d <= 7; d++ {
		p, err := ParsePermNum(strconv.Itoa(d))
		require.NoError(t, err)
		require.Equal(t, d, p.Digit())
	}

	for _, input := range []string{"8", "9", "a", "-", "r"} {
		_, err := ParsePermNum(input)
		require.ErrorIs(t, err, ErrInvalidDigit, "input %q", input)
	}
	for _, input := range []string{"", "07", "755"} {
		_, err := ParsePermNum(input)
		require.ErrorIs(t, err, ErrInvalidLength, "input %q", input)
	}
}

func TestPermDiff(t *testing.T) {
	t.Parallel()
	d := PermRWX.Diff(PermRX)
	require.Equal(t, PermDiff{Read: Same, Write: Minus, Execute: Same}, d)
	require.Equal(t, "-w", d.String())

	d = PermW.Diff(PermRX)
	require.Equal(t, "+rx-w", d.String())

	require.False(t, PermR.Diff(PermR).Changed())
	require.Equal(t, "", PermR.Diff(PermR).String())
}
