package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xen-tools/gen-policy/version"
)

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gen-policy version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gen-policy %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
