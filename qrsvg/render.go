package qrsvg

import "github.com/mgedmin/qr2text/qrcanvas"

// Options control terminal rendering.
type Options struct {
	Big    bool // full-width blocks, two characters per module
	Trim   bool // strip the empty border
	Invert bool // flip light and dark, for dark terminals
	Pad    int  // blank border thickness, in modules
}

// Text renders the QR code as UTF-8 text, two pixel rows per line using
// half blocks, or one row per line of doubled full blocks with Big.
// Trim, Pad and Invert are applied in that order first.
func (qr *QR) Text(opts Options) string {
	canvas := qr.Canvas
	if opts.Trim {
		canvas = canvas.Trim()
	}
	if opts.Pad > 0 {
		canvas = canvas.Pad(opts.Pad, opts.Pad, opts.Pad, opts.Pad)
	}
	if opts.Invert {
		canvas = canvas.Invert()
	}
	if opts.Big {
		return canvas.ASCIIArt(qrcanvas.FullBlocks, 2)
	}
	return canvas.UnicodeBlocks(qrcanvas.HalfBlocks)
}

// decodeScale matches the export settings zbar needs to recognize PyQRCode
// output; unscaled exports routinely fail to scan.
const decodeScale = 2

// DecodePayload hands a raw export of the canvas to the injected decoder
// and returns whatever payloads it finds. With a nil decoder, decoding is
// disabled and the result is empty.
func (qr *QR) DecodePayload(dec Decoder) ([][]byte, error) {
	if dec == nil {
		return nil, nil
	}
	w := qr.Canvas.Width() * decodeScale
	h := qr.Canvas.Height() * decodeScale
	pix := qr.Canvas.Bytes([2]byte{0xFF, 0x00}, decodeScale, decodeScale)
	return dec(pix, w, h)
}
