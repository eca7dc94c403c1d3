package animation

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// StylesheetFile is the name of the stylesheet asset inside an asset directory.
	StylesheetFile = "custom.css"
	// ScriptFile is the name of the shared hover-handler script inside an asset directory.
	ScriptFile = "javascript.txt"
)

//go:embed static/custom.css static/javascript.txt
var staticFS embed.FS

// Assets holds the static stylesheet and hover-handler script. Load them once
// before the first render and treat them as read-only afterwards.
type Assets struct {
	Stylesheet string
	Script     string
}

// LoadAssets reads both assets from dir. A missing or unreadable file is an
// error wrapping ErrAssetMissing.
func LoadAssets(dir string) (*Assets, error) {
	css, err := os.ReadFile(filepath.Join(dir, StylesheetFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetMissing, StylesheetFile, err)
	}
	js, err := os.ReadFile(filepath.Join(dir, ScriptFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetMissing, ScriptFile, err)
	}
	return &Assets{Stylesheet: string(css), Script: string(js)}, nil
}

// DefaultAssets returns the stylesheet and script compiled into the binary.
func DefaultAssets() *Assets {
	css, err := staticFS.ReadFile("static/" + StylesheetFile)
	if err != nil {
		panic(err) // embedded at build time
	}
	js, err := staticFS.ReadFile("static/" + ScriptFile)
	if err != nil {
		panic(err)
	}
	return &Assets{Stylesheet: string(css), Script: string(js)}
}

// styleBlock returns the stylesheet ready to be prepended to a fragment.
func (a *Assets) styleBlock() string {
	if strings.HasPrefix(strings.TrimSpace(a.Stylesheet), "<style") {
		return a.Stylesheet
	}
	return "<style>\n" + a.Stylesheet + "</style>"
}
