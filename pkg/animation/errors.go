package animation

import "errors"

var (
	// ErrEmptyFileID is returned when a figure is rendered without an identifier.
	ErrEmptyFileID = errors.New("animation: file id must not be empty")

	// ErrLengthMismatch is returned when hover labels and instructions differ in length.
	ErrLengthMismatch = errors.New("animation: labels and instructions differ in length")

	// ErrDuplicateRef is returned in strict mode when two cells share an element ref.
	ErrDuplicateRef = errors.New("animation: duplicate element ref")

	// ErrUnknownRef is returned in strict mode when a binding targets no rendered cell.
	ErrUnknownRef = errors.New("animation: binding targets unknown element ref")

	// ErrAssetMissing is returned when a static asset cannot be read.
	ErrAssetMissing = errors.New("animation: static asset missing")

	// ErrInvalidConfig is returned when a Config cannot be used to render markup.
	ErrInvalidConfig = errors.New("animation: invalid config")

	// ErrNoAssets is returned when an Assembler is created without assets.
	ErrNoAssets = errors.New("animation: assets are required")
)

// ErrNoSink is returned by Render when the Assembler has no display sink.
var ErrNoSink = errors.New("animation: no display sink configured")
