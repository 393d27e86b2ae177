package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"deepunit.dev/pkg/deepunit/internal/domain"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last run",
		Long:  "View the summary of the last run saved in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return resolveReportWorkflow(cmd).View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
