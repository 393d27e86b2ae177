package cmd

import (
	"github.com/spf13/cobra"

	"deepunit.dev/pkg/deepunit/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the files a run would process",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), domain.ListArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
