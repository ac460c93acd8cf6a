// Command outline-markers synthesizes numbered stroke-order markers for a
// letter: at each given canvas position, a filled circle with the digit
// glyph for the marker's index placed inside it. The output is SVG path
// data, circle and digit alternating, one subpath group per line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/outline"
	"honnef.co/go/outline/font"
)

const usageBanner = `outline-markers - numbered stroke-order markers

Positions are canvas coordinates on the size×size square the letter was
normalized into, e.g. -at "120,80;300,410". Markers are numbered in the
order given. With -space outline, the marker geometry is emitted in outline
space instead of canvas space, ready to be re-projected with the letter's
transform.

`

var (
	fontPath  = flag.String("font", "", "Font file (TTF or OTF)")
	letter    = flag.String("letter", "", "Letter the markers belong to")
	at        = flag.String("at", "", "Marker positions, \"x,y;x,y;…\"")
	size      = flag.Float64("size", 600, "Side length of the canvas square")
	margin    = flag.Float64("margin", 20, "Margin kept around the letter")
	radius    = flag.Float64("radius", 12, "Marker circle radius, in canvas pixels")
	inside    = flag.Float64("inside", 0.6, "Fraction of the circle the digit occupies")
	space     = flag.String("space", "canvas", "Output space: canvas or outline")
	precision = flag.Int("precision", 3, "Maximum coordinate precision, 0 for full")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fontPath == "" || *letter == "" || *at == "" {
		flag.Usage()
		os.Exit(2)
	}
	runes := []rune(*letter)
	if len(runes) != 1 {
		log.Fatal("outline-markers: -letter must be a single letter")
	}

	positions, err := parsePositions(*at)
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatal(err)
	}
	face, err := font.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	p, err := face.Outline(runes[0])
	if err != nil {
		log.Fatal(err)
	}
	_, tr, err := outline.NormalizeInset(p, *size, *margin)
	if err != nil {
		log.Fatal(err)
	}

	opts := outline.PathDataOptions{MaxPrecision: *precision}
	for idx, pos := range positions {
		center := pos
		r := *radius
		if *space == "outline" {
			center = tr.ToOutline(pos)
			r = *radius / tr.Scale
		}

		circle := outline.Path{outline.Circle(center, r)}
		fmt.Println(outline.PathData(circle, opts))

		digit, err := face.Outline(rune('1' + idx))
		if err != nil {
			log.Fatal(err)
		}
		var placed outline.Path
		if *space == "outline" {
			placed, err = outline.PlaceChildAtCanvas(digit, 2**radius**inside, pos, tr)
		} else {
			placed, err = outline.PlaceChild(digit, 2*r**inside, center)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(outline.PathData(placed, opts))
	}
}

func parsePositions(s string) ([]outline.Point, error) {
	var pts []outline.Point
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.SplitN(part, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("outline-markers: bad position %q", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("outline-markers: bad position %q", part)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("outline-markers: bad position %q", part)
		}
		pts = append(pts, outline.Pt(x, y))
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("outline-markers: no positions given")
	}
	if len(pts) > 9 {
		return nil, fmt.Errorf("outline-markers: at most 9 markers (single digits)")
	}
	return pts, nil
}
