package smufl

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// glyphnamesFile mirrors the shape of SMuFL's glyphnames.json: a map of
// glyph name to its metadata object.
type glyphnamesFile map[string]struct {
	Codepoint   string `json:"codepoint"`
	Description string `json:"description"`
}

// LoadMetadataFile parses a glyphnames.json-shaped file at path and
// upserts every entry into the cache, returning how many were loaded.
func (c *Cache) LoadMetadataFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read smufl metadata %s: %w", path, err)
	}
	var parsed glyphnamesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("parse smufl metadata %s: %w", path, err)
	}
	for name, entry := range parsed {
		if err := c.Put(Glyph{Name: name, Codepoint: entry.Codepoint, Description: entry.Description}); err != nil {
			return 0, err
		}
	}
	return len(parsed), nil
}

// SearchPaths returns the per-platform directories Finale and other
// SMuFL-aware applications conventionally search for font metadata
// (glyphnames.json and per-font "metadata.json" files), in priority
// order: user-level paths before system-level ones.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "SMuFL", "Fonts"),
			"/Library/Application Support/SMuFL/Fonts",
		}
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		commonAppData := os.Getenv("PROGRAMDATA")
		var out []string
		if appData != "" {
			out = append(out, filepath.Join(appData, "SMuFL", "Fonts"))
		}
		if commonAppData != "" {
			out = append(out, filepath.Join(commonAppData, "SMuFL", "Fonts"))
		}
		return out
	default:
		return []string{
			filepath.Join(home, ".local", "share", "SMuFL", "Fonts"),
			"/usr/local/share/SMuFL/Fonts",
			"/usr/share/SMuFL/Fonts",
		}
	}
}
