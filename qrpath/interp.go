package qrpath

import "fmt"

// Canvas is the drawing surface the interpreter paints on.
type Canvas interface {
	// HorizontalLine sets a one pixel thick run of width pixels starting
	// at (x, y); width must be positive.
	HorizontalLine(x, y, width float64)
}

// cursor tracks the pen position while replaying drawing commands.
// The first command of a well-formed path is an absolute move, so the
// initial (0, 0) never actually matters.
type cursor struct {
	x, y float64
	dst  Canvas
}

func (c *cursor) horizontalLine(dx float64) {
	if dx > 0 {
		c.dst.HorizontalLine(c.x, c.y, dx)
	} else if dx < 0 {
		c.dst.HorizontalLine(c.x+dx, c.y, -dx)
	}
	c.x += dx
}

// Draw replays the drawing commands of path onto dst. PyQRCode only emits
// absolute moves, relative moves and relative horizontal lines; anything
// else, or a recognized letter with the wrong number of arguments, is an
// error.
func Draw(dst Canvas, path string) error {
	p := NewParser(path)
	cur := cursor{dst: dst}
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case cmd.Letter == 'M' && len(cmd.Args) == 2:
			cur.x, cur.y = cmd.Args[0], cmd.Args[1]
		case cmd.Letter == 'm' && len(cmd.Args) == 2:
			cur.x += cmd.Args[0]
			cur.y += cmd.Args[1]
		case cmd.Letter == 'h' && len(cmd.Args) == 1:
			cur.horizontalLine(cmd.Args[0])
		default:
			return fmt.Errorf("Did not expect drawing command %c with %d parameters", cmd.Letter, len(cmd.Args))
		}
	}
}
