package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"exfold.dev/pkg/exfold/internal/domain"
	m "exfold.dev/pkg/exfold/internal/model"
)

var listParallelFlag int

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and their fold structure",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = []m.Path{"./..."}
			}

			filter := sourceFilter()

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.List(ctx, domain.ListArgs{
				Paths:    paths,
				Exclude:  filter.Exclude,
				Include:  filter.Include,
				UseCache: !viper.GetBool(noCacheFlagName),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Threads:  viper.GetInt(runParallelConfigKey),
				SpillDir: viper.GetString(spillDirConfigKey),
			})
		},
	}

	cmd.Flags().IntVarP(&listParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files classified in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
