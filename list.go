package main

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jxsl13/cchmod/archive"
	"github.com/jxsl13/cchmod/config"
	"github.com/jxsl13/cchmod/model"
)

func NewListCmd() *cobra.Command {
	cfg := &config.ListConfig{}

	cmd := &cobra.Command{
		Use:     "ls (-n|-s) <directory|archive>",
		Short:   "list the permissions of every entry in a directory or archive",
		Example: `  cchmod ls -n -f release.tar.gz`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Load(cmd.Flags(), map[string]interface{}{"root": args[0]}, cfg)
			if err != nil {
				return err
			}
			if !archive.IsSupported(cfg.Root) {
				return fmt.Errorf("unsupported archive format: %s", cfg.Root)
			}

			files, err := readArchive(cfg)
			if err != nil {
				return err
			}
			return printFiles(cmd.OutOrStdout(), files, cfg.Format)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(cmd.Flags(), cfg)
	return cmd
}

func readArchive(cfg *config.ListConfig) (map[string]model.File, error) {
	out := make(map[string]model.File, 1024)
	err := archive.Walk(cfg.Root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to process file: %s: %w", path, err)
		}

		f := model.File{
			Path: path,
			Mode: info.Mode(),
		}
		if cfg.Match(f) {
			out[path] = f
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func printFiles(w io.Writer, files map[string]model.File, format model.Format) error {
	for _, k := range sortedKeys(files) {
		_, err := fmt.Fprintf(w, "%s %s\n", files[k].PermString(format), k)
		if err != nil {
			return err
		}
	}
	return nil
}
