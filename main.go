package main

import (
	"fmt"
	"os"

	"stegocrypt/cmd"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stegocrypt",
	Short: "StegoCrypt - Hide secret messages inside ordinary images.",
	Long: `StegoCrypt embeds text into the least significant bits of an image's
color channels. The change is invisible to the eye, and an optional password
scrambles the message before it is hidden.

Usage:
  stegocrypt <command> [flags]

Available Commands:
  encode     Hide a message inside an image
  decode     Reveal a hidden message from an image
  info       Show image info and steganography capacity
  serve      Start the HTTP API server

Run 'stegocrypt help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to StegoCrypt! Run 'stegocrypt --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.EncodeCmd)
	rootCmd.AddCommand(cmd.DecodeCmd)
	rootCmd.AddCommand(cmd.InfoCmd)
	rootCmd.AddCommand(cmd.ServeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
