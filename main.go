package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jxsl13/cchmod/config"
	"github.com/jxsl13/cchmod/model"
)

// set via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	log.SetFlags(0)
	checkErr(NewRootCmd().Execute())
}

func NewRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "cchmod (-n|-s) <input>",
		Short: "convert file permissions between octal and symbolic form",
		Long: `cchmod converts a full mode (755, rwxr-xr-x) or a single permission
(5, r-x) into its octal (-n) or symbolic (-s) form.

Symbolic input starting with a dash has to follow "--", e.g. cchmod -n -- -wx`,
		Example: `  cchmod -n rwxr-xr-x
  cchmod -s 644`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Load(cmd.Flags(), map[string]interface{}{"input": args[0]}, cfg)
			if err != nil {
				return err
			}

			v, err := model.Parse(cfg.Input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.Format.Render(v))
			return err
		},
	}

	config.RegisterFlags(cmd.Flags(), cfg)
	// registered before cobra adds its default so that the shorthand is -V
	cmd.Flags().BoolP("version", "V", false, "version for cchmod")

	cmd.AddCommand(
		NewDiffCmd(),
		NewListCmd(),
	)
	return cmd
}
