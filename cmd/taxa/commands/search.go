package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/taxa/internal/app"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Look a scientific name up in the external label source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			unaccepted, _ := cmd.Flags().GetBool("unaccepted")
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")
			color, _ := cmd.Flags().GetString("color")

			return c.app.Search(cmd.Context(), cwd, strings.Join(args, " "), app.SearchOptions{
				Unaccepted: unaccepted,
				Limit:      limit,
				JSON:       asJSON,
				Color:      color,
			})
		},
	}
	cmd.Flags().BoolP("unaccepted", "u", false, "Include names that are not accepted")
	cmd.Flags().IntP("limit", "n", 0, "Print at most this many results")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	cmd.Flags().String("color", "auto", "Color output: auto, always or never")
	return cmd
}
