package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gogate/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gogate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gogate v%s\n", version.Version)
		fmt.Println("Cantilever Slide Gate Structural Design Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
