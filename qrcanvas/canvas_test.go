package qrcanvas

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fromLines builds a canvas from a '.'/'X' picture, the inverse of
// Canvas.String.
func fromLines(t *testing.T, lines ...string) *Canvas {
	t.Helper()
	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}
	pixels := make([][]byte, len(lines))
	for y, line := range lines {
		if len(line) != width {
			t.Fatalf("ragged fixture line %q", line)
		}
		pixels[y] = make([]byte, width)
		for x := range line {
			if line[x] == 'X' {
				pixels[y][x] = 1
			}
		}
	}
	return FromPixels(width, len(lines), pixels)
}

func TestHorizontalLineRows(t *testing.T) {
	c := New(5, 3)
	c.HorizontalLine(0, 0.5, 5)
	c.HorizontalLine(1, 1.5, 3)
	c.HorizontalLine(2, 2.5, 1)
	want := "XXXXX\n.XXX.\n..X.."
	if got := c.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestHorizontalLineClipping(t *testing.T) {
	c := New(3, 2)
	c.HorizontalLine(-2, 0.5, 7) // overhangs both sides
	c.HorizontalLine(0, -0.5, 3) // row above the canvas
	c.HorizontalLine(0, 0, 3)    // y=0 is the middle of row -1
	c.HorizontalLine(0, 9.5, 3)  // row below the canvas
	want := "XXX\n..."
	if got := c.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestHorizontalLineFractionalX(t *testing.T) {
	c := New(5, 1)
	// columns [floor(1.9), floor(1.9+1.2)) = [1, 3)
	c.HorizontalLine(1.9, 0.5, 1.2)
	if got, want := c.String(), ".XX.."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHorizontalLineContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for width <= 0")
		}
	}()
	New(3, 3).HorizontalLine(0, 0.5, 0)
}

func TestInvertRoundTrip(t *testing.T) {
	c := fromLines(t, "XXXXX", ".XXX.", "..X..")
	inv := c.Invert()
	if got, want := inv.String(), ".....\nX...X\nXX.XX"; got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if diff := cmp.Diff(c.String(), inv.Invert().String()); diff != "" {
		t.Errorf("invert round trip (-want +got):\n%s", diff)
	}
}

func TestTrimEmpty(t *testing.T) {
	trimmed := New(4, 3).Trim()
	if trimmed.Width() != 0 || trimmed.Height() != 0 {
		t.Errorf("got %d x %d, want 0 x 0", trimmed.Width(), trimmed.Height())
	}
	if trimmed.String() != "" {
		t.Errorf("unexpected render %q", trimmed.String())
	}
}

func TestTrim(t *testing.T) {
	c := fromLines(t,
		".....",
		".XX..",
		".X.X.",
		".....",
		".....")
	got := c.Trim()
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("got %d x %d, want 3 x 2", got.Width(), got.Height())
	}
	if want := "XX.\nX.X"; got.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.String(), want)
	}
}

func TestTrimKeepsInteriorBlanks(t *testing.T) {
	c := fromLines(t,
		"X...X",
		".....",
		"X...X")
	if got := c.Trim().String(); got != c.String() {
		t.Errorf("trim changed a canvas with set corners:\n%s", got)
	}
}

func TestPad(t *testing.T) {
	c := fromLines(t, "XX", ".X")
	got := c.Pad(1, 2, 3, 4)
	if got.Width() != 2+2+4 || got.Height() != 2+1+3 {
		t.Fatalf("got %d x %d, want 8 x 6", got.Width(), got.Height())
	}
	want := "........\n" +
		"....XX..\n" +
		".....X..\n" +
		"........\n" +
		"........\n" +
		"........"
	if got.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.String(), want)
	}
}

func TestPadContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for negative padding")
		}
	}()
	New(1, 1).Pad(0, -1, 0, 0)
}

func TestASCIIArt(t *testing.T) {
	c := fromLines(t, "X.", ".X")
	if got, want := c.ASCIIArt(FullBlocks, 2), "██  \n  ██"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := c.ASCIIArt([2]rune{'-', '#'}, 1), "#-\n-#"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnicodeBlocks(t *testing.T) {
	c := fromLines(t,
		"X..X",
		".X.X")
	if got, want := c.UnicodeBlocks(HalfBlocks), "▀▄ █"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Odd heights render one extra line against a phantom blank row.
func TestUnicodeBlocksOddHeight(t *testing.T) {
	c := fromLines(t,
		"X.",
		"XX",
		".X")
	if got, want := c.UnicodeBlocks(HalfBlocks), "█▄\n ▀"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnicodeBlocksEmpty(t *testing.T) {
	if got := New(0, 0).UnicodeBlocks(HalfBlocks); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestBytes(t *testing.T) {
	c := fromLines(t, "X.")
	got := c.Bytes([2]byte{0xFF, 0x00}, 2, 2)
	want := []byte{
		0x00, 0x00, 0xFF, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestImage(t *testing.T) {
	c := fromLines(t, "X.")
	img := c.Image(2, 2)
	if img.Rect.Dx() != 4 || img.Rect.Dy() != 2 {
		t.Fatalf("got %v, want 4x2", img.Rect)
	}
	want := []byte{
		0x00, 0x00, 0xFF, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("got % x, want % x", img.Pix, want)
	}
}

func TestFromPixelsContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a shape mismatch")
		}
	}()
	FromPixels(2, 1, [][]byte{{1}})
}
