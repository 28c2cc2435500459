// Package musxfixture generates synthetic EnigmaXML documents covering
// the concrete load/integrity scenarios load tests exercise, so those
// tests do not need a real Finale-exported archive checked into the
// repository.
package musxfixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config controls which fixtures Generate emits.
type Config struct {
	OutputDir string
	Scenarios []string // names from Scenarios(); empty means all of them
}

// Manifest describes the fixtures Generate wrote, for tests that want
// to iterate them without hardcoding filenames.
type Manifest struct {
	Fixtures []ManifestFixture `json:"fixtures"`
}

// ManifestFixture is one entry in Manifest.Fixtures.
type ManifestFixture struct {
	File        string `json:"file"`
	Scenario    string `json:"scenario"`
	Description string `json:"description"`
}

type scenario struct {
	name        string
	description string
	render      func() string
}

var scenarios = []scenario{
	{"gfhold_both_clefs", "a GFrameHold with both clefID and clefListID set, which must fail integrity", renderGFrameHoldBothClefs},
	{"quintuplet_frame", "a single frame containing a 5-in-the-time-of-4 tuplet", renderQuintupletFrame},
	{"nested_tuplets", "a tuplet nested inside another tuplet, exercising time-scale multiplication", renderNestedTuplets},
	{"staff_composite", "a raw staff overlaid by two time-scoped staff styles", renderStaffComposite},
	{"beam_walk_hidden", "a beam run containing a hidden (alternate-notation) entry", renderBeamWalkHidden},
	{"key_transposition", "a staff, a measure in a non-C linear key, and one note", renderKeyTransposition},
}

// Scenarios returns the names Generate accepts in Config.Scenarios.
func Scenarios() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

// Generate writes one .musx.xml file per requested scenario into
// cfg.OutputDir, plus a manifest.json describing them, and returns the
// manifest.
func Generate(cfg Config) (*Manifest, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./testdata/musx"
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir output: %w", err)
	}

	want := make(map[string]bool, len(cfg.Scenarios))
	for _, n := range cfg.Scenarios {
		want[n] = true
	}

	manifest := &Manifest{}
	for _, s := range scenarios {
		if len(cfg.Scenarios) > 0 && !want[s.name] {
			continue
		}
		filename := s.name + ".musx.xml"
		path := filepath.Join(cfg.OutputDir, filename)
		content := s.render()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write fixture %s: %w", filename, err)
		}
		manifest.Fixtures = append(manifest.Fixtures, ManifestFixture{
			File:        filename,
			Scenario:    s.name,
			Description: s.description,
		})
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return manifest, nil
}

// Render returns the raw content for a single named scenario without
// writing it to disk, for tests that want to feed it straight to a
// parser.
func Render(name string) (string, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s.render(), true
		}
	}
	return "", false
}
