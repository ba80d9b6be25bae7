package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// setupColor resolves the --color flag. "auto" enables color only when
// stdout is a terminal; fatih/color already respects NO_COLOR.
func setupColor() {
	mode, _ := rootCmd.PersistentFlags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
)

func quiet() bool {
	q, _ := rootCmd.PersistentFlags().GetBool("quiet")
	return q
}
