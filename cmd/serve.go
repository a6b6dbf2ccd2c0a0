package cmd

import (
	"log"
	"os"

	"stegocrypt/handlers"

	"github.com/spf13/cobra"
)

var servePort string

var ServeCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Start the StegoCrypt HTTP API server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := servePort
		if port == "" {
			port = os.Getenv("PORT")
		}
		if port == "" {
			port = "5050"
		}

		router := handlers.NewRouter()

		log.Printf("Server starting on port %s", port)
		log.Printf("API endpoints:")
		log.Printf("  POST /api/v1/stego/encode - Hide a message in an image (returns stego PNG)")
		log.Printf("  POST /api/v1/stego/decode - Extract a hidden message from an image")
		log.Printf("  POST /api/v1/stego/info   - Image dimensions, mode and capacity")
		log.Printf("  GET  /api/v1/health       - Health check")
		log.Printf("")
		log.Printf("Features:")
		log.Printf("  • LSB steganography on RGB pixel channels")
		log.Printf("  • Password-based byte-shift obfuscation")
		log.Printf("  • Lossless PNG output regardless of input format")
		log.Printf("  • PSNR quality assessment (returned in X-Stego-PSNR header)")

		return router.Run(":" + port)
	},
}

func init() {
	ServeCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (defaults to $PORT or 5050)")
}
