package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the build via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cammy version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cammy %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
