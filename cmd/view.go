package cmd

import (
	"github.com/spf13/cobra"

	"exfold.dev/pkg/exfold/internal/domain"
	m "exfold.dev/pkg/exfold/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a file with its folds",
		Long: `Show a file with a fold level gutter. On a terminal the viewer is
interactive: +/- open and close one level, R/M open or close everything,
q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.View(ctx, domain.ViewArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
