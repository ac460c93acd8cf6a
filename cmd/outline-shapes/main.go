// Command outline-shapes extracts glyph outlines from a font, normalizes
// each one into a fixed-size square, and prints the resulting SVG path data,
// one letter per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"honnef.co/go/outline"
	"honnef.co/go/outline/font"
)

const usageBanner = `outline-shapes - normalized glyph path data

Prints one "letter<TAB>path-data" line per letter, with every outline
flipped, scaled, and centered into a size×size square.

`

var (
	fontPath  = flag.String("font", "", "Font file (TTF or OTF)")
	size      = flag.Float64("size", 600, "Side length of the target square")
	letters   = flag.String("letters", defaultLetters, "Letters to export")
	precision = flag.Int("precision", 3, "Maximum coordinate precision, 0 for full")
	output    = flag.String("out", "", "Output file (default stdout)")
)

const defaultLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *size <= 0 {
		log.Fatal("outline-shapes: -size must be positive")
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatal(err)
	}
	face, err := font.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	opts := outline.PathDataOptions{MaxPrecision: *precision}
	for _, r := range *letters {
		p, err := face.Outline(r)
		if err != nil {
			if errors.Is(err, font.ErrNoGlyph) {
				log.Printf("warning: no glyph for %q, skipping", r)
				continue
			}
			log.Fatal(err)
		}
		norm, _, err := outline.Normalize(p, *size)
		if err != nil {
			log.Printf("warning: %v for %q, skipping", err, r)
			continue
		}
		fmt.Fprintf(w, "%c\t%s\n", r, outline.PathData(norm, opts))
	}
}
