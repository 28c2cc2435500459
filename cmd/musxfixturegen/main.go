// Command musxfixturegen writes deterministic EnigmaXML fixtures used by
// package tests and demos.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/cartomix/musxdom/musxfixture"
)

func main() {
	outDir := flag.String("out", "./testdata/musx", "output directory for generated fixtures")
	scenarios := flag.String("scenarios", "", "comma-separated scenario names (default: all of them)")
	flag.Parse()

	cfg := musxfixture.Config{OutputDir: *outDir}
	if *scenarios != "" {
		for _, s := range strings.Split(*scenarios, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				cfg.Scenarios = append(cfg.Scenarios, s)
			}
		}
	}

	manifest, err := musxfixture.Generate(cfg)
	if err != nil {
		log.Fatalf("generate fixtures: %v", err)
	}

	log.Printf("musxfixturegen wrote %d fixtures to %s", len(manifest.Fixtures), cfg.OutputDir)
}
