// Package fonts loads the TrueType face pkg/raster draws node labels
// with, falling back to a fixed-width bitmap face when no font file is
// configured or the configured one can't be parsed.
//
// The pipeline runs headless/server-side, so unlike a desktop app this
// package never scans the host's installed fonts: callers configure an
// explicit path (via [pipeline.Options.FontPath] / [config.Settings]),
// or get the fallback.
package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fallback is the face used when no font path is configured, or the
// configured file can't be read or parsed as TrueType.
var Fallback font.Face = basicfont.Face7x13

// Load returns a font.Face for path at sizePt, or [Fallback] if path is
// empty or unusable.
func Load(path string, sizePt float64) font.Face {
	if path == "" {
		return Fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fallback
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return Fallback
	}
	return truetype.NewFace(f, &truetype.Options{Size: sizePt})
}
