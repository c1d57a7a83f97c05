package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"exfold.dev/pkg/exfold/internal/domain"
	m "exfold.dev/pkg/exfold/internal/model"
)

var errInvalidLine = errors.New("--line must be 1 or greater")

type editFlags struct {
	line       int
	remove     int
	insert     []string
	write      bool
	diff       bool
	fullRescan bool
}

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Replay an edit through the incremental re-scanner",
		Long: `Remove --remove lines starting at --line and insert the --insert lines in
their place, then print the lines whose fold level changed. --diff prints
a unified diff of the level-annotated file instead.`,
		Example: `  exfold edit lib/app.ex --line 3 --insert '  def b(), do: 2'
  exfold edit lib/app.ex --line 10 --remove 2 --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.line < 1 {
				return errInvalidLine
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.Edit(ctx, domain.EditArgs{
				Path:       m.Path(args[0]),
				Position:   flags.line - 1,
				Remove:     flags.remove,
				Insert:     flags.insert,
				Write:      flags.write,
				Diff:       flags.diff,
				FullRescan: flags.fullRescan,
			})
		},
	}

	cmd.Flags().IntVarP(&flags.line, "line", "l", 1, "1-based line the edit starts at")
	cmd.Flags().IntVarP(&flags.remove, "remove", "r", 0, "number of lines to remove")
	cmd.Flags().StringArrayVarP(&flags.insert, "insert", "i", nil, "line to insert (can be repeated)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the edited file back")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff of the annotated levels")
	cmd.Flags().BoolVar(&flags.fullRescan, "full", false, "re-scan the whole file instead of the affected range")

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
