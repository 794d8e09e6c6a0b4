package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is printed by the version subcommand.
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all aworld subcommands.
var rootCmd = &cobra.Command{
	Use:   "aworld [command]",
	Short: "aworld is an Another World bytecode VM",
	Long:  "aworld is an Another World (Out of This World) bytecode virtual machine",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs aworld according to the user's command/subcommand/flags.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
