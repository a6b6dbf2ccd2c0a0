package cmd

import (
	"fmt"

	"stegocrypt/stego"

	"github.com/spf13/cobra"
)

var (
	decodeImage    string
	decodePassword string
)

var DecodeCmd = &cobra.Command{
	Use:          "decode",
	Short:        "Reveal a hidden message from an image",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("\n[→] Decoding message from '%s' ...\n", decodeImage)

		codec := stego.NewCodec(stego.DefaultConfig())
		result := codec.DecodeFile(decodeImage, decodePassword)

		if !result.Success {
			return fmt.Errorf("%s %s", failMark(), result.Message)
		}

		fmt.Printf("%s %s\n", okMark(), result.Message)
		fmt.Println("\n── Secret Message ─────────────────────────────────────")
		fmt.Println(*result.Secret)
		fmt.Println("───────────────────────────────────────────────────────")
		return nil
	},
}

func init() {
	DecodeCmd.Flags().StringVarP(&decodeImage, "image", "i", "", "stego-image path")
	DecodeCmd.Flags().StringVarP(&decodePassword, "password", "p", "", "optional password")
	_ = DecodeCmd.MarkFlagRequired("image")
}
