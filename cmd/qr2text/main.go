// Command qr2text converts PyQRCode SVG images to ASCII art for display
// in a terminal, optionally decoding the QR payload.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mgedmin/qr2text/qrdecode"
	"github.com/mgedmin/qr2text/qrsvg"
)

const version = "1.0.2"

func main() {
	var (
		invert   = flag.Bool("invert", false, "terminal is black on white")
		whiteBg  = flag.Bool("white-background", false, "terminal is black on white (same as -invert)")
		big      = flag.Bool("big", false, "use full unicode blocks instead of half blocks")
		trim     = flag.Bool("trim", false, "remove empty border")
		pad      = flag.Int("pad", 0, "pad with empty border")
		noDecode = flag.Bool("no-decode", false, "don't decode the QR codes")
		showVer  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()
	if *showVer {
		fmt.Printf("qr2text version %s\n", version)
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: qr2text [options] file.svg ... (use - for stdin)")
		os.Exit(2)
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		fmt.Fprintln(os.Stderr, "^C")
		os.Exit(1)
	}()

	var decoder qrsvg.Decoder
	if !*noDecode {
		decoder = qrdecode.Decode
	}
	opts := qrsvg.Options{
		// terminal is assumed white on black, so light and dark are
		// flipped unless the user says otherwise
		Invert: !(*invert || *whiteBg),
		Big:    *big,
		Trim:   *trim,
		Pad:    *pad,
	}

	rc := 0
	for _, name := range flag.Args() {
		qr, err := read(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			rc = 1
			continue
		}
		fmt.Println(qr.Text(opts))
		payloads, err := qr.DecodePayload(decoder)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			rc = 1
			continue
		}
		for _, data := range payloads {
			fmt.Println(strings.ToValidUTF8(string(data), "�"))
		}
	}
	os.Exit(rc)
}

func read(name string) (*qrsvg.QR, error) {
	if name == "-" {
		return qrsvg.Read(os.Stdin)
	}
	return qrsvg.ReadFile(name)
}
