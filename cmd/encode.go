package cmd

import (
	"fmt"
	"strings"

	"stegocrypt/stego"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encodeImage    string
	encodeMessage  string
	encodeOutput   string
	encodePassword string
)

var EncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Hide a message inside an image",
	Long: `Embeds a secret message into the least significant bits of an image
and writes the result as a PNG. An optional password scrambles the message
before embedding.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(encodeMessage) == "" {
			return fmt.Errorf("message cannot be empty")
		}

		fmt.Printf("\n[→] Encoding message into '%s' ...\n", encodeImage)
		_, cleanup := startSpinner("Embedding message...")

		codec := stego.NewCodec(stego.DefaultConfig())
		result := codec.EncodeFile(encodeImage, encodeMessage, encodeOutput, encodePassword)
		cleanup()

		if !result.Success {
			return fmt.Errorf("%s %s", failMark(), result.Message)
		}

		fmt.Printf("%s %s\n", okMark(), result.Message)
		fmt.Printf("    Output : %s\n", color.YellowString(encodeOutput))
		fmt.Printf("    Used   : %d chars  |  Capacity: %d chars\n", result.Used, result.Capacity)
		return nil
	},
}

func init() {
	EncodeCmd.Flags().StringVarP(&encodeImage, "image", "i", "", "carrier image path")
	EncodeCmd.Flags().StringVarP(&encodeMessage, "message", "m", "", "secret message to hide")
	EncodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output stego-image path (.png)")
	EncodeCmd.Flags().StringVarP(&encodePassword, "password", "p", "", "optional password")
	_ = EncodeCmd.MarkFlagRequired("image")
	_ = EncodeCmd.MarkFlagRequired("message")
	_ = EncodeCmd.MarkFlagRequired("output")
}
