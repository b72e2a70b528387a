package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the srtedit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "srtedit %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
