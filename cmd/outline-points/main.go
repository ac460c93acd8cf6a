// Command outline-points samples stroke points along normalized glyph
// outlines and writes one JSON record per letter, in the format tracing
// apps load as assets.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"honnef.co/go/outline"
	"honnef.co/go/outline/export"
	"honnef.co/go/outline/font"
)

const usageBanner = `outline-points - per-letter stroke point records

Samples every stroke of every letter at evenly spaced parameter values and
writes <dir>/<letter>_PointsInfo.json records with coordinates scaled into
the unit square.

`

var (
	fontPath = flag.String("font", "", "Font file (TTF or OTF)")
	dir      = flag.String("dir", "assets", "Output directory")
	points   = flag.Int("points", 12, "Points per stroke")
	size     = flag.Float64("size", 100, "Side length of the normalization square")
	letters  = flag.String("letters", defaultLetters, "Letters to export")
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

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatal(err)
	}
	face, err := font.Parse(data)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatal(err)
	}

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
		strokes, err := outline.Sample(norm, *points)
		if err != nil {
			log.Fatal(err)
		}

		info := export.New(string(r), strokes, *size)
		buf, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		name := filepath.Join(*dir, fmt.Sprintf("%c_PointsInfo.json", r))
		if err := os.WriteFile(name, buf, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}
