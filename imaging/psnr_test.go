package imaging

import (
	"math"
	"testing"
)

func TestPSNRIdenticalImages(t *testing.T) {
	img := gradientImage(20, 20)
	if got := PSNR(img, img); !math.IsInf(got, 1) {
		t.Errorf("PSNR of identical images = %f, want +Inf", got)
	}
}

func TestPSNRSingleBitFlips(t *testing.T) {
	a := gradientImage(20, 20)
	b := gradientImage(20, 20)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] ^= 1 // flip the red LSB of every pixel
	}

	got := PSNR(a, b)
	// A third of the channels differ by exactly 1, so MSE = 1/3.
	want := 20 * math.Log10(255/math.Sqrt(1.0/3.0))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PSNR = %f, want %f", got, want)
	}
}

func TestPSNRDimensionMismatch(t *testing.T) {
	if got := PSNR(gradientImage(10, 10), gradientImage(11, 10)); got != 0 {
		t.Errorf("PSNR with mismatched sizes = %f, want 0", got)
	}
}

func TestPSNRIgnoresAlpha(t *testing.T) {
	a := gradientImage(10, 10)
	b := gradientImage(10, 10)
	for i := 3; i < len(b.Pix); i += 4 {
		b.Pix[i] = 0
	}
	if got := PSNR(a, b); !math.IsInf(got, 1) {
		t.Errorf("alpha-only differences changed PSNR: %f", got)
	}
}
