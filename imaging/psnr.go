// Package imaging PSNR measures how much embedding distorted the carrier
package imaging

import (
	"image"
	"math"
)

// PSNR computes the peak signal-to-noise ratio between two same-sized RGB
// images, in dB. Only the color channels are compared, alpha is skipped.
// Returns +Inf for identical images and 0 for mismatched dimensions.
func PSNR(original, stego *image.NRGBA) float64 {
	if original.Bounds() != stego.Bounds() {
		return 0.0
	}
	if len(original.Pix) == 0 {
		return 0.0
	}

	var mse float64
	samples := 0
	for i := 0; i < len(original.Pix); i++ {
		if i%4 == 3 {
			continue
		}
		diff := float64(original.Pix[i]) - float64(stego.Pix[i])
		mse += diff * diff
		samples++
	}
	if samples == 0 {
		return 0.0
	}
	mse /= float64(samples)

	// If MSE is 0, images are identical
	if mse == 0 {
		return math.Inf(1)
	}

	// PSNR = 20 * log10(MAX_CHANNEL_VALUE / sqrt(MSE))
	maxChannelValue := 255.0
	return 20 * math.Log10(maxChannelValue/math.Sqrt(mse))
}
