package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Wird beim Release über -ldflags gesetzt.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Versionsinformationen",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("rechnung %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
