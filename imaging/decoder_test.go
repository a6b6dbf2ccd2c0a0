package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 7), uint8(y * 5), uint8(x + y), 255})
		}
	}
	return img
}

func TestWritePNGLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	src := gradientImage(33, 17)

	if err := WritePNG(path, src); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := ToRGB(loaded)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("pixel data changed across the PNG round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/missing.png"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestToRGBDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 0})
	src.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 128})

	rgb := ToRGB(src)
	for i := 3; i < len(rgb.Pix); i += 4 {
		if rgb.Pix[i] != 255 {
			t.Fatalf("alpha byte %d = %d, want 255", i, rgb.Pix[i])
		}
	}
}

func TestToRGBFromGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 128})
	src.SetGray(2, 0, color.Gray{Y: 255})

	rgb := ToRGB(src)
	for x := 0; x < 3; x++ {
		c := rgb.NRGBAAt(x, 0)
		if c.R != c.G || c.G != c.B {
			t.Errorf("pixel %d not gray after conversion: %+v", x, c)
		}
	}
}

func TestToRGBNonZeroOriginBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 9, 8))
	rgb := ToRGB(src)
	if rgb.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v", rgb.Bounds())
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()

	t.Run("truecolor png", func(t *testing.T) {
		path := filepath.Join(dir, "rgb.png")
		if err := WritePNG(path, gradientImage(40, 30)); err != nil {
			t.Fatalf("WritePNG: %v", err)
		}

		meta, err := Inspect(path)
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if meta.Width != 40 || meta.Height != 30 {
			t.Errorf("dimensions = %dx%d", meta.Width, meta.Height)
		}
		if meta.Channels < 3 {
			t.Errorf("channels = %d, want >= 3", meta.Channels)
		}
	})

	t.Run("grayscale png", func(t *testing.T) {
		gray := image.NewGray(image.Rect(0, 0, 8, 8))
		var buf bytes.Buffer
		if err := png.Encode(&buf, gray); err != nil {
			t.Fatalf("png.Encode: %v", err)
		}
		path := filepath.Join(dir, "gray.png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		meta, err := Inspect(path)
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if meta.Mode != "L" || meta.Channels != 1 {
			t.Errorf("mode = %q channels = %d, want L/1", meta.Mode, meta.Channels)
		}
	})
}

func TestThumbnailKeepsAspect(t *testing.T) {
	thumb := Thumbnail(gradientImage(800, 600), PreviewMaxWidth, PreviewMaxHeight)
	if w, h := thumb.Bounds().Dx(), thumb.Bounds().Dy(); w != 400 || h != 300 {
		t.Errorf("thumbnail = %dx%d, want 400x300", w, h)
	}

	small := Thumbnail(gradientImage(100, 50), PreviewMaxWidth, PreviewMaxHeight)
	if w, h := small.Bounds().Dx(), small.Bounds().Dy(); w != 100 || h != 50 {
		t.Errorf("small image was scaled to %dx%d", w, h)
	}
}

func TestPreviewDataURL(t *testing.T) {
	url, err := PreviewDataURL(gradientImage(500, 400))
	if err != nil {
		t.Fatalf("PreviewDataURL: %v", err)
	}
	if len(url) == 0 || url[:23] != "data:image/jpeg;base64," {
		t.Errorf("unexpected prefix: %.40s", url)
	}
}
