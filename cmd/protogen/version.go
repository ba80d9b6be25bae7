package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protogen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("protogen", version.Full())
	},
}
