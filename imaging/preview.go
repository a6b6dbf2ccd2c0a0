package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

const (
	PreviewMaxWidth  = 400
	PreviewMaxHeight = 300
	previewQuality   = 80
)

// Thumbnail scales img down to fit inside maxW x maxH, keeping the aspect
// ratio. Images already small enough are returned as an RGB copy unscaled.
func Thumbnail(img image.Image, maxW, maxH int) *image.NRGBA {
	src := ToRGB(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// PreviewDataURL renders a small JPEG preview of img as a base64 data URL
// the frontend can drop straight into an <img> tag.
func PreviewDataURL(img image.Image) (string, error) {
	thumb := Thumbnail(img, PreviewMaxWidth, PreviewMaxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: previewQuality}); err != nil {
		return "", fmt.Errorf("failed to encode preview: %v", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PNGDataURL renders img as a base64 PNG data URL for download links.
func PNGDataURL(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
