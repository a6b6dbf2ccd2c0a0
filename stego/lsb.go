// Package stego to implement LSB
package stego

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"unicode/utf8"

	"stegocrypt/crypto"
	"stegocrypt/imaging"
)

// Config carries the codec parameters. The delimiter marks the end of the
// embedded payload; it is appended after the password transform at encode
// time and must be matched before reversing the transform at decode time.
// SafetyMargin is subtracted from the reported capacity so a caller who
// fills it exactly still leaves room for the delimiter.
type Config struct {
	Delimiter    string
	SafetyMargin int
}

// DefaultConfig matches the wire format of existing stego images. The
// delimiter value must stay bit-for-bit identical for interoperability.
func DefaultConfig() Config {
	return Config{
		Delimiter:    "<<END>>",
		SafetyMargin: 10,
	}
}

// Codec hides text in the least significant bits of an RGB image and
// extracts it back. Stateless between calls; safe to share across goroutines.
type Codec struct {
	cfg Config
}

func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// EmbedStats reports how much of the carrier an embed operation consumed.
// Capacity is in characters (capacity bits / 8), Used is the byte length of
// the payload including the delimiter.
type EmbedStats struct {
	Capacity int
	Used     int
}

// CapacityError is returned when the payload plus delimiter does not fit in
// the carrier image.
type CapacityError struct {
	RequiredBytes int
	CapacityChars int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message too large: requires %d bytes, capacity %d chars", e.RequiredBytes, e.CapacityChars)
}

// ErrNoMessageFound means the delimiter never appeared in the extracted bit
// stream. A plain image, a corrupted stream, and a wrong password that
// garbled the delimiter are indistinguishable here.
var ErrNoMessageFound = errors.New("no hidden message found")

// Embed hides message inside img and returns a new RGB image. The input
// image is never modified. The message may be empty; callers that want to
// reject empty messages do so before calling Embed.
func (c *Codec) Embed(img image.Image, message, password string) (*image.NRGBA, *EmbedStats, error) {
	rgb := imaging.ToRGB(img)
	bounds := rgb.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// One bit per color channel.
	capacityBits := width * height * 3
	capacityChars := capacityBits / 8

	cipher := crypto.NewByteShift(password)
	payload := cipher.Apply([]byte(message))

	full := make([]byte, 0, len(payload)+len(c.cfg.Delimiter))
	full = append(full, payload...)
	full = append(full, c.cfg.Delimiter...)

	bits := bytesToBits(full)
	if len(bits) > capacityBits {
		return nil, nil, &CapacityError{
			RequiredBytes: len(full),
			CapacityChars: capacityChars,
		}
	}

	// Walk the R, G, B channel values in scan order and overwrite the LSB of
	// each with the next payload bit. Channels past the payload stay as-is.
	for i, bit := range bits {
		pixel := i / 3
		offset := (pixel/width)*rgb.Stride + (pixel%width)*4 + i%3
		rgb.Pix[offset] = (rgb.Pix[offset] &^ 1) | bit
	}

	stats := &EmbedStats{
		Capacity: capacityChars,
		Used:     len(full),
	}
	return rgb, stats, nil
}

// Extract scans the LSBs of img in the same channel order Embed uses,
// accumulating bytes until the delimiter appears as a suffix. The delimiter
// is stripped first and only then is the password transform reversed.
func (c *Codec) Extract(img image.Image, password string) (string, error) {
	rgb := imaging.ToRGB(img)
	bounds := rgb.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	delimiter := []byte(c.cfg.Delimiter)
	payload := make([]byte, 0, 64)
	found := false

	var current byte
	bitCount := 0

	total := width * height * 3
scan:
	for i := 0; i < total; i++ {
		pixel := i / 3
		offset := (pixel/width)*rgb.Stride + (pixel%width)*4 + i%3
		current = (current << 1) | (rgb.Pix[offset] & 1)
		bitCount++
		if bitCount == 8 {
			payload = append(payload, current)
			current = 0
			bitCount = 0
			if bytes.HasSuffix(payload, delimiter) {
				payload = payload[:len(payload)-len(delimiter)]
				found = true
				break scan
			}
		}
	}
	// A trailing partial byte is dropped, matching the bit serializer.

	if !found {
		return "", ErrNoMessageFound
	}

	plain := crypto.NewByteShift(password).Reverse(payload)

	// A wrong password usually produces invalid UTF-8. Fall back to a
	// byte-per-rune decoding so the caller gets garbled text, never an error.
	if utf8.Valid(plain) {
		return string(plain), nil
	}
	runes := make([]rune, len(plain))
	for i, b := range plain {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
