package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the caller's installed aworld version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed aworld version",
	Long:  "Run `aworld version` to get your current aworld version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(currentReleaseVersion)
	},
}
