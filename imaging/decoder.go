// Package imaging is made to handle carrier image I/O
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"stegocrypt/models"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load opens and decodes the image at path. Any format registered with the
// image package is accepted (PNG, JPEG, GIF, BMP, TIFF).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return img, nil
}

// Decode reads an image from r, for callers holding an upload stream rather
// than a file.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return img, nil
}

// ToRGB normalizes any decoded image to a freshly allocated 3-channel RGB
// raster (stored as NRGBA with the alpha byte forced to 255). The source
// image is never modified.
func ToRGB(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	rgb := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgb, rgb.Bounds(), img, bounds.Min, draw.Src)

	// Drop whatever alpha the source carried.
	for i := 3; i < len(rgb.Pix); i += 4 {
		rgb.Pix[i] = 0xFF
	}
	return rgb
}

// Inspect reads just the image header and reports dimensions, a mode name
// and the channel count, without decoding pixel data.
func Inspect(path string) (*models.ImageMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %v", err)
	}

	mode, channels := describeColorModel(cfg.ColorModel)
	return &models.ImageMetadata{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Mode:     mode,
		Channels: channels,
	}, nil
}

func describeColorModel(m color.Model) (string, int) {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "L", 1
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model:
		return "RGBA", 4
	case color.CMYKModel:
		return "CMYK", 4
	case color.YCbCrModel:
		return "YCbCr", 3
	}
	if _, ok := m.(color.Palette); ok {
		return "P", 1
	}
	return "RGB", 3
}

// EncodePNG renders img as lossless PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// WritePNG writes img to path as PNG. The image is encoded fully in memory
// first so a failed encode never leaves a partial file behind.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PNG: %v", err)
	}
	return nil
}
