// Package qrdecode implements the payload decoding boundary on top of
// gozxing. It satisfies qrsvg.Decoder, so callers that don't want the
// dependency can inject their own decoder (or none).
package qrdecode

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Decode scans a raw 8-bit grayscale buffer (len(pix) must be
// width*height) for a QR code payload. Finding nothing is not an error;
// any reader failure maps to an empty result.
func Decode(pix []byte, width, height int) ([][]byte, error) {
	img := &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, nil
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil, nil
	}
	return [][]byte{[]byte(result.GetText())}, nil
}
