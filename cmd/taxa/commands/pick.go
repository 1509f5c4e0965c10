package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/taxa/internal/app"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick labels interactively and print the selection as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			write, _ := cmd.Flags().GetBool("write")
			logFile, _ := cmd.Flags().GetString("log-file")

			return c.app.Pick(cmd.Context(), cwd, app.PickOptions{
				Write:   write,
				LogFile: logFile,
			})
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Write deletions, imports and favourites back to the label files")
	cmd.Flags().String("log-file", "", "Append log output to this file while the picker is open (default .taxa/debug.log)")
	return cmd
}
