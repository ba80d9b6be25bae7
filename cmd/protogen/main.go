package main

import (
	"os"

	"github.com/spf13/cobra"

	"protogen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "protogen",
	Short: "Protocol schema compiler",
	Long:  `protogen compiles a message schema into wire-encoding IR for 7-bit (SysEx) and 8-bit (binary) protocols`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(idsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(setupColor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
