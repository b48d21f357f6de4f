package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxsl13/cchmod/model"
)

func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "print the chmod changes that turn one mode or permission into another",
		Example: `  cchmod diff 644 755
  cchmod diff rwx r-x`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := diff(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func diff(from, to string) (string, error) {
	a, err := model.Parse(from)
	if err != nil {
		return "", err
	}
	b, err := model.Parse(to)
	if err != nil {
		return "", err
	}

	var d fmt.Stringer
	switch a := a.(type) {
	case model.Mode:
		b, ok := b.(model.Mode)
		if !ok {
			return "", fmt.Errorf("cannot compare mode %s with permission %s", from, to)
		}
		d = a.Diff(b)
	case model.Perm:
		b, ok := b.(model.Perm)
		if !ok {
			return "", fmt.Errorf("cannot compare permission %s with mode %s", from, to)
		}
		d = a.Diff(b)
	}

	if out := d.String(); out != "" {
		return out, nil
	}
	return "=", nil
}
