package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the deepunit build version and the Go version used to build it.
The build version is also sent to the generation service as the client version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			v := clientVersion()
			if v == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("deepunit version\t", v)
			cmd.Println("go version\t", runtime.Version())
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
