package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"srcalias.dev/pkg/srcalias/internal/domain"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved rewrite report",
		Long:  "Print the rewrites and warnings recorded in a report written with --report.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(reportFlagName))
			_, err := workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
