// Command polyweld consolidates the polylines in an SVG's <path> elements:
// collinear fragments are joined, dashed strokes are stitched, and
// nearly-closed outlines are closed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-polyweld/polyweld/internal/svgpath"
	"github.com/go-polyweld/polyweld/pkg/polyweld"
)

func main() {
	inPath := flag.String("in", "", "Path to the input SVG file")
	outPath := flag.String("out", "", "Path to write the consolidated path data (defaults to stdout)")
	dTol := flag.Float64("d-tol", 50.0, "Maximum endpoint distance for merging/closure")
	aTol := flag.Float64("a-tol", 15.0, "Maximum tangent-angle difference, in degrees, for collinearity")
	simplifyTol := flag.Float64("simplify-tol", 1.01, "Douglas-Peucker simplification tolerance")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("Please provide -in path")
	}

	cfg := polyweld.Config{
		DistanceTolerance: *dTol,
		AngleTolerance:    *aTol,
		SimplifyTolerance: *simplifyTol,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("opening %s: %v", *inPath, err)
	}
	defer f.Close()

	polylines, err := svgpath.ParseDocument(f)
	if err != nil {
		log.Fatalf("parsing %s: %v", *inPath, err)
	}
	log.Printf("parsed %d polylines from %s", len(polylines), *inPath)

	out, err := polyweld.Consolidate(polylines, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("consolidated to %d polylines", len(out))

	w := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("creating %s: %v", *outPath, err)
		}
		defer f.Close()
		w = f
	}

	for _, pl := range out {
		fmt.Fprintln(w, svgpath.WritePathData(pl))
	}
}
