package stego

import (
	"errors"
	"fmt"
	"os"

	"stegocrypt/imaging"
	"stegocrypt/models"
)

// The file-level entry points mirror the codec's public API surface: they
// never return a Go error, every failure is folded into a Success=false
// result with a human-readable message.

// EncodeFile hides message inside the image at imagePath and writes the
// stego image to outputPath as PNG. On failure no output file is produced.
func (c *Codec) EncodeFile(imagePath, message, outputPath, password string) models.EncodeResult {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return models.EncodeResult{Message: loadErrorMessage(err)}
	}

	stegoImg, stats, err := c.Embed(img, message, password)
	if err != nil {
		var capErr *CapacityError
		if errors.As(err, &capErr) {
			return models.EncodeResult{
				Message: fmt.Sprintf(
					"Message too large! Image can hold ≈%d chars but the message requires %d chars.",
					capErr.CapacityChars-len(c.cfg.Delimiter), capErr.RequiredBytes),
				Capacity: capErr.CapacityChars,
				Used:     capErr.RequiredBytes,
			}
		}
		return models.EncodeResult{Message: fmt.Sprintf("Error: %v", err)}
	}

	if err := imaging.WritePNG(outputPath, stegoImg); err != nil {
		return models.EncodeResult{Message: fmt.Sprintf("Error: %v", err)}
	}

	return models.EncodeResult{
		Success:  true,
		Message:  "Message successfully hidden in image! ✓",
		Capacity: stats.Capacity,
		Used:     stats.Used,
	}
}

// DecodeFile extracts the hidden message from the image at imagePath.
// Secret is nil when nothing was found.
func (c *Codec) DecodeFile(imagePath, password string) models.DecodeResult {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return models.DecodeResult{Message: loadErrorMessage(err)}
	}

	secret, err := c.Extract(img, password)
	if err != nil {
		if errors.Is(err, ErrNoMessageFound) {
			return models.DecodeResult{
				Message: "No hidden message found in this image (or wrong password).",
			}
		}
		return models.DecodeResult{Message: fmt.Sprintf("Error: %v", err)}
	}

	return models.DecodeResult{
		Success: true,
		Message: "Message extracted successfully! ✓",
		Secret:  &secret,
	}
}

// CapacityFile reports the usable capacity of the image at imagePath without
// reading the pixel data. Read-only, no side effects.
func (c *Codec) CapacityFile(imagePath string) models.CapacityResult {
	meta, err := imaging.Inspect(imagePath)
	if err != nil {
		return models.CapacityResult{Message: loadErrorMessage(err)}
	}

	channels := meta.Channels
	if channels > 3 {
		channels = 3
	}
	usable := meta.Width*meta.Height*channels/8 - len(c.cfg.Delimiter) - c.cfg.SafetyMargin
	if usable < 0 {
		usable = 0
	}

	return models.CapacityResult{
		Success:       true,
		Width:         meta.Width,
		Height:        meta.Height,
		Mode:          meta.Mode,
		CapacityChars: usable,
	}
}

func loadErrorMessage(err error) string {
	if os.IsNotExist(err) {
		return "Image file not found."
	}
	return fmt.Sprintf("Error: %v", err)
}
