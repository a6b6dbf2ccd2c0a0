// Package crypto contains the password-derived byte shift cipher
package crypto

// ByteShift obfuscates a payload with a Caesar-style shift over raw bytes.
// The shift amount is the sum of the password's code points mod 256. Shifting
// raw UTF-8 bytes instead of codepoints keeps the payload length stable, so
// multi-byte characters survive the round trip.
type ByteShift struct {
	shift int
}

func NewByteShift(password string) *ByteShift {
	shift := 0
	for _, r := range password {
		shift += int(r)
	}
	return &ByteShift{
		shift: shift % 256,
	}
}

// Apply returns a new byte sequence with every byte shifted forward mod 256.
// An empty password is a no-op.
func (bs *ByteShift) Apply(data []byte) []byte {
	if bs.shift == 0 {
		return data
	}

	shifted := make([]byte, len(data))
	for i, b := range data {
		shifted[i] = byte((int(b) + bs.shift) % 256)
	}

	return shifted
}

// Reverse undoes Apply with the same password. A wrong password is never
// detected here; it simply produces different bytes.
func (bs *ByteShift) Reverse(data []byte) []byte {
	if bs.shift == 0 {
		return data
	}

	original := make([]byte, len(data))
	for i, b := range data {
		original[i] = byte((int(b) - bs.shift + 256) % 256)
	}

	return original
}
