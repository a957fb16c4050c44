// Package qrcanvas implements the monochrome pixel grid a QR code is
// rasterized onto, with the transformations and encodings needed to show
// it in a terminal or hand it to a payload decoder.
package qrcanvas

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Rendering palettes. HalfBlocks is indexed by 2*lower + upper pixel value
// (blank, upper set, lower set, both set); FullBlocks by the raw pixel
// value.
var (
	HalfBlocks = [4]rune{' ', '▀', '▄', '█'}
	FullBlocks = [2]rune{' ', '█'}
)

// Canvas is a width×height grid of binary pixels, row-major, origin at the
// top left. The transformation methods (Trim, Pad, Invert) return new
// grids; only HorizontalLine mutates in place.
type Canvas struct {
	width, height int
	pixels        [][]byte
}

// New returns an all-zero canvas. Zero-sized canvases are valid and
// produce empty renders.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("qrcanvas: negative size %d x %d", width, height))
	}
	pixels := make([][]byte, height)
	for i := range pixels {
		pixels[i] = make([]byte, width)
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

// FromPixels wraps an existing pixel array. Every row must have exactly
// width cells and there must be exactly height rows.
func FromPixels(width, height int, pixels [][]byte) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("qrcanvas: negative size %d x %d", width, height))
	}
	if len(pixels) != height {
		panic(fmt.Sprintf("qrcanvas: %d rows for height %d", len(pixels), height))
	}
	for _, row := range pixels {
		if len(row) != width {
			panic(fmt.Sprintf("qrcanvas: %d cells in a row for width %d", len(row), width))
		}
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the pixel value (0 or 1) at (x, y).
func (c *Canvas) At(x, y int) byte { return c.pixels[y][x] }

// HorizontalLine draws a one pixel thick horizontal stroke. PyQRCode emits
// whole-number x coordinates and a y coordinate shifted by 0.5 to point at
// the middle of the pixel row, so the row index is floor(y-0.5). Pixels
// outside the canvas are clipped, not an error. width must be positive.
func (c *Canvas) HorizontalLine(x, y, width float64) {
	if width <= 0 {
		panic(fmt.Sprintf("qrcanvas: non-positive line width %g", width))
	}
	row := int(math.Floor(y - 0.5))
	if row < 0 || row >= c.height {
		return
	}
	for col := int(math.Floor(x)); col < int(math.Floor(x+width)); col++ {
		if 0 <= col && col < c.width {
			c.pixels[row][col] = 1
		}
	}
}

func (c *Canvas) rowBlank(y int) bool {
	for _, v := range c.pixels[y] {
		if v != 0 {
			return false
		}
	}
	return true
}

func (c *Canvas) columnBlank(x int) bool {
	for y := 0; y < c.height; y++ {
		if c.pixels[y][x] != 0 {
			return false
		}
	}
	return true
}

// Trim returns a copy with all-blank border rows and columns removed.
// A fully blank canvas trims to a zero-by-zero canvas.
func (c *Canvas) Trim() *Canvas {
	top := 0
	for top < c.height && c.rowBlank(top) {
		top++
	}
	bottom := c.height
	for bottom > top && c.rowBlank(bottom-1) {
		bottom--
	}
	left := 0
	for left < c.width && c.columnBlank(left) {
		left++
	}
	right := c.width
	for right > left && c.columnBlank(right-1) {
		right--
	}
	pixels := make([][]byte, bottom-top)
	for i := range pixels {
		pixels[i] = append([]byte(nil), c.pixels[top+i][left:right]...)
	}
	return FromPixels(right-left, bottom-top, pixels)
}

// Pad returns a copy surrounded by a blank border of the given
// thicknesses, which must not be negative.
func (c *Canvas) Pad(top, right, bottom, left int) *Canvas {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		panic(fmt.Sprintf("qrcanvas: negative padding %d %d %d %d", top, right, bottom, left))
	}
	out := New(c.width+left+right, c.height+top+bottom)
	for y, row := range c.pixels {
		copy(out.pixels[top+y][left:], row)
	}
	return out
}

// Invert returns a copy with every pixel flipped.
func (c *Canvas) Invert() *Canvas {
	out := New(c.width, c.height)
	for y, row := range c.pixels {
		for x, v := range row {
			out.pixels[y][x] = 1 - v
		}
	}
	return out
}

// ASCIIArt renders one line of text per pixel row, each pixel becoming
// chars[value] repeated xscale times.
func (c *Canvas) ASCIIArt(chars [2]rune, xscale int) string {
	lines := make([]string, c.height)
	var b strings.Builder
	for y, row := range c.pixels {
		b.Reset()
		for _, v := range row {
			for i := 0; i < xscale; i++ {
				b.WriteRune(chars[v])
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// UnicodeBlocks folds two pixel rows into each output line, halving the
// line count. An odd-height canvas gets a phantom blank final row, so it
// renders (height+1)/2 lines and the last line has a blank lower half.
func (c *Canvas) UnicodeBlocks(chars [4]rune) string {
	var lines []string
	var b strings.Builder
	for y := 0; y < c.height; y += 2 {
		b.Reset()
		for x := 0; x < c.width; x++ {
			upper := c.pixels[y][x]
			var lower byte
			if y+1 < c.height {
				lower = c.pixels[y+1][x]
			}
			b.WriteRune(chars[lower*2+upper])
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Bytes serializes the canvas as a flat byte buffer, each pixel expanded
// into an xscale×yscale block of values[value], row-major. The result is
// usable as an 8-bit grayscale image of width*xscale by height*yscale.
func (c *Canvas) Bytes(values [2]byte, xscale, yscale int) []byte {
	out := make([]byte, 0, c.width*xscale*c.height*yscale)
	line := make([]byte, 0, c.width*xscale)
	for _, row := range c.pixels {
		line = line[:0]
		for _, v := range row {
			for i := 0; i < xscale; i++ {
				line = append(line, values[v])
			}
		}
		for i := 0; i < yscale; i++ {
			out = append(out, line...)
		}
	}
	return out
}

// Image exports the canvas as a grayscale image, white background with
// black set pixels, expanded by the given scale factors.
func (c *Canvas) Image(xscale, yscale int) *image.Gray {
	src := image.NewGray(image.Rect(0, 0, c.width, c.height))
	for y, row := range c.pixels {
		for x, v := range row {
			if v == 0 {
				src.Pix[y*src.Stride+x] = 0xFF
			}
		}
	}
	if xscale == 1 && yscale == 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, c.width*xscale, c.height*yscale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// String renders the canvas with a debugging palette.
func (c *Canvas) String() string {
	return c.ASCIIArt([2]rune{'.', 'X'}, 1)
}
