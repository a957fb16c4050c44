// Package qrsvg reads SVG images produced by PyQRCode, rasterizes the QR
// code they contain onto a pixel grid, and renders it as terminal text.
// Payload decoding is delegated to an injected Decoder (see qrdecode for a
// concrete one).
package qrsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/mgedmin/qr2text/qrcanvas"
	"github.com/mgedmin/qr2text/qrpath"
)

// Decoder turns a raw 8-bit grayscale image buffer (len(pix) is
// width*height, 0xFF background, 0x00 modules) into zero or more QR
// payloads. Finding no payload is not an error: decoders return (nil, nil).
// A nil Decoder means decoding is disabled.
type Decoder func(pix []byte, width, height int) ([][]byte, error)

// QR is a PyQRCode image rasterized onto a square module grid.
type QR struct {
	Size   int // modules per side
	Canvas *qrcanvas.Canvas
}

// New returns a QR with a blank size×size canvas.
func New(size int) *QR {
	return &QR{Size: size, Canvas: qrcanvas.New(size, size)}
}

const floatPattern = `[-+]?(?:\d*\.\d+|\d+)(?:[eE][-+]?\d+)?`

var scaleRx = regexp.MustCompile(`^scale\((` + floatPattern + `)\)$`)

// Read parses a PyQRCode SVG document from the stream and rasterizes its
// QR code. The document must have a square <svg class="pyqrcode"> root,
// sized either by a viewBox anchored at the origin or by explicit
// width/height attributes, and contain a <path class="pyqrline"> element
// whose d attribute holds the drawing commands. Any other shape is an
// error.
func Read(stream io.Reader) (*QR, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		width    float64
		seenRoot bool
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("Couldn't parse SVG: %s", err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := attrMap(se.Attr)
		if !seenRoot {
			seenRoot = true
			if se.Name.Local != "svg" {
				return nil, fmt.Errorf("This is not an SVG image: <%s>", se.Name.Local)
			}
			width, err = rootSize(attrs)
			if err != nil {
				return nil, err
			}
			continue
		}
		if se.Name.Local == "path" && attrs["class"] == "pyqrline" {
			return readPath(attrs, width)
		}
	}
	if !seenRoot {
		return nil, errors.New("Couldn't parse SVG: no elements found")
	}
	return nil, errors.New("Did not find the QR code in the image")
}

// ReadFile is Read on the named file.
func ReadFile(name string) (*QR, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		m[attr.Name.Local] = attr.Value
	}
	return m
}

// rootSize validates the root element's marker and shape and returns the
// image width, which must equal its height.
func rootSize(attrs map[string]string) (float64, error) {
	if attrs["class"] != "pyqrcode" {
		return 0, errors.New("The image was not generated by PyQRCode")
	}
	var width, height float64
	if viewbox := attrs["viewBox"]; viewbox != "" {
		fields := strings.Fields(viewbox)
		if len(fields) != 4 {
			return 0, fmt.Errorf("Couldn't parse viewbox: %s", viewbox)
		}
		var nums [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return 0, fmt.Errorf("Couldn't parse viewbox: %s", viewbox)
			}
			nums[i] = v
		}
		if nums[0] != 0 || nums[1] != 0 {
			return 0, fmt.Errorf("Unexpected viewbox origin: %s", viewbox)
		}
		width, height = nums[2], nums[3]
	} else {
		var err error
		if width, err = dim(attrs, "width"); err != nil {
			return 0, err
		}
		if height, err = dim(attrs, "height"); err != nil {
			return 0, err
		}
	}
	if width != height {
		return 0, fmt.Errorf("Image is not square: %g x %g", width, height)
	}
	return width, nil
}

func dim(attrs map[string]string, name string) (float64, error) {
	value, ok := attrs[name]
	if !ok {
		return 0, fmt.Errorf("Image %s is not specified", name)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("Couldn't parse %s: %s", name, value)
	}
	return v, nil
}

// readPath derives the module count from the path's scale transform and
// interprets the drawing commands onto a fresh canvas.
func readPath(attrs map[string]string, width float64) (*QR, error) {
	scale := 1.0
	if transform := attrs["transform"]; transform != "" {
		m := scaleRx.FindStringSubmatch(transform)
		if m == nil {
			return nil, fmt.Errorf("Couldn't parse transform: %s", transform)
		}
		scale, _ = strconv.ParseFloat(m[1], 64)
	}
	qr := New(int(width / scale))
	d, ok := attrs["d"]
	if !ok {
		return nil, errors.New("SVG <path> element has no 'd' attribute")
	}
	if err := qrpath.Draw(qr.Canvas, d); err != nil {
		return nil, err
	}
	return qr, nil
}
