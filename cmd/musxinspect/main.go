// Command musxinspect loads an EnigmaXML file and prints a summary of
// its pools: counts per record kind and the detected instrument list.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/musxdom"
	"github.com/cartomix/musxdom/smufl"
)

func main() {
	path := flag.String("file", "", "path to an EnigmaXML file to inspect")
	strict := flag.Bool("strict", false, "fail on unknown XML tags/enum tokens instead of logging them")
	part := flag.Int("part", 0, "part id to inspect (0 = score)")
	smuflDir := flag.String("smufl-cache", "", "directory holding (or to create) the SMuFL glyph metadata cache; omit to skip glyph resolution")
	flag.Parse()

	if *path == "" {
		log.Fatal("musxinspect: -file is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("musxinspect: read %s: %v", *path, err)
	}

	opts := []musxdom.LoadOption{musxdom.WithStrict(*strict), musxdom.WithLogger(slog.Default())}
	if *smuflDir != "" {
		cache, err := smufl.Open(*smuflDir, slog.Default())
		if err != nil {
			log.Fatalf("musxinspect: open smufl cache: %v", err)
		}
		defer cache.Close()
		opts = append(opts, musxdom.WithSMuFLClassifier(smufl.NewClassifier(cache)))
	}

	doc, err := musxdom.Load(data, opts...)
	if err != nil {
		log.Fatalf("musxinspect: load: %v", err)
	}

	fmt.Printf("measures:     %d\n", len(doc.Measures.All()))
	fmt.Printf("staves:       %d\n", len(doc.Staves.All()))
	fmt.Printf("staff styles: %d\n", len(doc.StaffStyles.All()))
	fmt.Printf("entries:      %d\n", doc.Entries.Len())
	fmt.Printf("gframeholds:  %d\n", len(doc.GFrameHolds.All()))

	insts := doc.Instruments(ids.PartID(*part))
	fmt.Printf("instruments (part %d): %d\n", *part, len(insts))
	for i, inst := range insts {
		fmt.Printf("  [%d] kind=%d staves=%v\n", i, inst.Kind, inst.Staves)
	}

	if doc.SMuFL != nil {
		fmt.Println("accidental glyphs:")
		for _, alt := range []int{-2, -1, 0, 1, 2} {
			name, _ := doc.SMuFL.GlyphName(alt)
			if r, ok := doc.SMuFL.AccidentalRune(alt); ok {
				fmt.Printf("  %+d -> %s (%c)\n", alt, name, r)
			} else {
				fmt.Printf("  %+d -> %s (uncached)\n", alt, name)
			}
		}
	}
}
