package layout

import "github.com/tinne26/glyphr/sizer"

// The direction in which the Y coordinate grows.
type CoordinateSystem uint8
const (
	PositiveYUp CoordinateSystem = iota
	PositiveYDown
)

func (self CoordinateSystem) String() string {
	switch self {
	case PositiveYUp: return "PositiveYUp"
	case PositiveYDown: return "PositiveYDown"
	default:
		return "UnknownCoordinateSystem"
	}
}

// Horizontal alignment of the lines within [Settings].MaxWidth.
type HorizontalAlign uint8
const (
	Left HorizontalAlign = iota
	Center
	Right
	Justify // like Left, but spreading soft wrapped lines to fill the width
)

func (self HorizontalAlign) String() string {
	switch self {
	case Left: return "Left"
	case Center: return "Center"
	case Right: return "Right"
	case Justify: return "Justify"
	default:
		return "UnknownHorizontalAlign"
	}
}

// Vertical alignment of the text within [Settings].MaxHeight.
type VerticalAlign uint8
const (
	Top VerticalAlign = iota
	Middle
	Bottom
)

func (self VerticalAlign) String() string {
	switch self {
	case Top: return "Top"
	case Middle: return "Middle"
	case Bottom: return "Bottom"
	default:
		return "UnknownVerticalAlign"
	}
}

// Determines where lines can be wrapped when they exceed the
// maximum width.
type WrapStyle uint8
const (
	// Wrap at the line break opportunities defined by the unicode
	// line breaking algorithm, keeping words together when possible.
	WrapWord WrapStyle = iota

	// Wrap after any glyph.
	WrapLetter
)

func (self WrapStyle) String() string {
	switch self {
	case WrapWord: return "WrapWord"
	case WrapLetter: return "WrapLetter"
	default:
		return "UnknownWrapStyle"
	}
}

// Settings for a [Layout].
type Settings struct {
	// Left and top sides of the text region.
	X, Y float32

	// Lines exceeding the width are wrapped. Zero or negative
	// values disable wrapping and horizontal alignment. Glyphs
	// wider than the region will still overflow it.
	MaxWidth float32

	// Only used for vertical alignment. Zero or negative values
	// disable it.
	MaxHeight float32

	HorizontalAlign HorizontalAlign
	VerticalAlign VerticalAlign
	WrapStyle WrapStyle

	// When true, line breaks in the text (e.g. '\n') start new lines.
	WrapHardBreaks bool

	// Metrics used for line heights and glyph advances. If nil,
	// [sizer.DefaultSizer] is used.
	Sizer sizer.Sizer
}

// Returns the default settings: no bounds, left and top aligned,
// word wrapping and hard breaks enabled.
func DefaultSettings() Settings {
	return Settings{ WrapHardBreaks: true }
}
