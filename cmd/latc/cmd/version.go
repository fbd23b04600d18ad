package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print latc's version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("latc version %s\n", Version)
	},
}
