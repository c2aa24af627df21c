package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time via
// -ldflags "-X github.com/xkilldash9x/gestureview/cmd.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gestureview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
