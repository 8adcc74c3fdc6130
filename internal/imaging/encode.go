package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
)

// PNGResult carries an encoded image back to an MCP client.
type PNGResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG serializes img to a lossless PNG byte buffer.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNGResult serializes img to PNG and wraps it as a base64 tool result.
func EncodePNGResult(img image.Image) (*PNGResult, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &PNGResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// WritePNG encodes img to PNG and writes it to path.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
