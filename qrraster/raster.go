// Package qrraster implements a raster backend for QR canvases, by
// wrapping rasterx. Each set module becomes a filled square, giving an
// image suitable for PNG encoding or for scanners that want real pixels.
package qrraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/mgedmin/qr2text/qrcanvas"
)

// Raster renders the canvas into an RGBA image with scale pixels per
// module, black modules on a white background.
func Raster(c *qrcanvas.Canvas, scale int) *image.RGBA {
	w, h := c.Width()*scale, c.Height()*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return img
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetColor(color.NRGBA{A: 0xFF})
	filler := rasterx.NewFiller(w, h, scanner)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != 0 {
				addSquare(filler, x*scale, y*scale, scale)
			}
		}
	}
	filler.Draw()
	return img
}

func addSquare(f *rasterx.Filler, x, y, size int) {
	p := func(px, py int) fixed.Point26_6 {
		return fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)}
	}
	f.Start(p(x, y))
	f.Line(p(x+size, y))
	f.Line(p(x+size, y+size))
	f.Line(p(x, y+size))
	f.Stop(true)
}
