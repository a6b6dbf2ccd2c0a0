package stego

// bytesToBits expands each byte into 8 bits, most significant bit first.
func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits back into bytes, MSB first. A trailing group of
// fewer than 8 bits is silently dropped; the delimiter scan in Extract stops
// mid-stream and relies on that.
func bitsToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = (b << 1) | (bits[i+j] & 1)
		}
		out = append(out, b)
	}
	return out
}

// TextToBits encodes text as UTF-8 and expands it into a bit sequence.
// The result length is always a multiple of 8.
func TextToBits(text string) []byte {
	return bytesToBits([]byte(text))
}

// BitsToText is the inverse of TextToBits, except that a trailing partial
// byte is dropped rather than reported as an error.
func BitsToText(bits []byte) string {
	return string(bitsToBytes(bits))
}
