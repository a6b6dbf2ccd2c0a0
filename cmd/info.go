package cmd

import (
	"fmt"

	"stegocrypt/stego"

	"github.com/spf13/cobra"
)

var infoImage string

var InfoCmd = &cobra.Command{
	Use:          "info",
	Short:        "Show image info and steganography capacity",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec := stego.NewCodec(stego.DefaultConfig())
		result := codec.CapacityFile(infoImage)

		if !result.Success {
			return fmt.Errorf("%s %s", failMark(), result.Message)
		}

		fmt.Printf("\n[i] Image info for '%s':\n", infoImage)
		fmt.Printf("    Dimensions : %d × %d px\n", result.Width, result.Height)
		fmt.Printf("    Mode       : %s\n", result.Mode)
		fmt.Printf("    Capacity   : ≈ %d characters\n", result.CapacityChars)
		return nil
	},
}

func init() {
	InfoCmd.Flags().StringVarP(&infoImage, "image", "i", "", "image path")
	_ = InfoCmd.MarkFlagRequired("image")
}
