package animation

import (
	"fmt"
	"regexp"
)

// handlerNamePattern matches a plain JavaScript identifier.
var handlerNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Config holds the options for the markup assembler.
type Config struct {
	// HighlightColor is the background applied to hovered and referenced cells.
	HighlightColor string `json:"highlight_color"`

	// DefaultColor is the background restored when the pointer leaves a cell.
	DefaultColor string `json:"default_color"`

	// SeriesWidth is the number of value slots rendered for every series row.
	// Shorter series are padded, longer series are cut.
	SeriesWidth int `json:"series_width"`

	// GridCategory is the category tag used in grid element refs.
	GridCategory string `json:"grid_category"`

	// HandlerName is the name of the shared hover routine defined by the script asset.
	HandlerName string `json:"handler_name"`

	// StrictRefs turns duplicate element refs and bindings to unknown refs
	// into errors instead of warnings.
	StrictRefs bool `json:"strict_refs"`
}

// DefaultConfig returns a Config matching the fixed hover palette.
func DefaultConfig() *Config {
	return &Config{
		HighlightColor: "#0cf",
		DefaultColor:   "#fff",
		SeriesWidth:    8,
		GridCategory:   "a",
		HandlerName:    "mouse",
		StrictRefs:     false,
	}
}

// Validate reports whether c can be used to render markup. HandlerName is
// emitted into the script unescaped, so it must be a plain identifier.
func (c *Config) Validate() error {
	if c.SeriesWidth < 0 {
		return fmt.Errorf("%w: series_width %d is negative", ErrInvalidConfig, c.SeriesWidth)
	}
	if !handlerNamePattern.MatchString(c.HandlerName) {
		return fmt.Errorf("%w: handler_name %q is not a JavaScript identifier", ErrInvalidConfig, c.HandlerName)
	}
	return nil
}
