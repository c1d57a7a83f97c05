package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"exfold.dev/pkg/exfold/internal/controller"
	"exfold.dev/pkg/exfold/internal/domain"
	m "exfold.dev/pkg/exfold/internal/model"
)

var levelsFormatFlag string

// levelsCmd represents the levels command.
var levelsCmd = newLevelsCmd()

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels <file>",
		Short: "Print the fold level of every line",
		Long: `Print the fold level of every line of an Elixir file. The text format
prints "<level> <line>" rows; json and yaml print the full report with
fold ranges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			return workflow.Levels(ctx, domain.LevelsArgs{
				Path:   m.Path(args[0]),
				Format: format,
			})
		},
	}

	cmd.Flags().StringVarP(&levelsFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: text, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
