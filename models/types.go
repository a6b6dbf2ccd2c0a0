// Package models contain needed models
package models

// EncodeResult is returned by the codec after hiding a message in an image.
// Capacity is the carrier capacity in characters, Used is the byte length of
// the embedded payload including the delimiter.
type EncodeResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Capacity int    `json:"capacity"`
	Used     int    `json:"used"`
}

// DecodeResult is returned by the codec after extracting a message.
// Secret is nil when no hidden message was found.
type DecodeResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Secret  *string `json:"secret"`
}

// CapacityResult describes how much text an image can hold.
type CapacityResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	Mode          string `json:"mode,omitempty"`
	CapacityChars int    `json:"capacity_chars"`
}

// InfoResponse is the HTTP response for the capacity endpoint, the codec
// result plus a browser preview.
type InfoResponse struct {
	CapacityResult
	Preview  string `json:"preview,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// EncodeResponse is the HTTP response for the encode endpoint. StegoImage
// carries the output PNG as a base64 data URL so the frontend can offer it
// as a download.
type EncodeResponse struct {
	EncodeResult
	StegoImage string  `json:"stego_image,omitempty"`
	Preview    string  `json:"preview,omitempty"`
	Filename   string  `json:"filename,omitempty"`
	PSNR       float64 `json:"psnr,omitempty"`
}

// DecodeResponse is the HTTP response for the decode endpoint.
type DecodeResponse struct {
	DecodeResult
	Preview  string `json:"preview,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ImageMetadata represents metadata about a carrier image
type ImageMetadata struct {
	Width    int
	Height   int
	Mode     string
	Channels int
}
