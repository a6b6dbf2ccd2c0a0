// Package cmd wires the StegoCrypt subcommands
package cmd

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")
	s.Start()

	cleanup := func() {
		s.Stop()
	}
	return s, cleanup
}

func okMark() string {
	return color.GreenString("[✓]")
}

func failMark() string {
	return color.RedString("[✗]")
}
