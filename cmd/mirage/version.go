package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirageproc/mirage"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mirage",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mirage version %s\n", strings.TrimSpace(mirage.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
