package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/taxa/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [tree]",
		Short: "Print label trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			flat, _ := cmd.Flags().GetBool("flat")
			expand, _ := cmd.Flags().GetBool("expand")
			color, _ := cmd.Flags().GetString("color")

			opts := app.ShowOptions{Flat: flat, Expand: expand, Color: color}
			if len(args) == 1 {
				opts.Tree = args[0]
			}
			return c.app.Show(cmd.Context(), cwd, opts)
		},
	}
	cmd.Flags().Bool("flat", false, "Print every label as a root")
	cmd.Flags().BoolP("expand", "e", false, "Open every label")
	cmd.Flags().String("color", "auto", "Color output: auto, always or never")
	return cmd
}
