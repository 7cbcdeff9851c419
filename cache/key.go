package cache

import "strconv"
import "encoding/binary"
import "math"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/sizer"

// Everything that determines the result of a glyph rasterization.
//
// Fractional positions must be quantized before keying, or almost
// every position will end up with its own entry.
type Key struct {
	// Font identifier, typically a hash of the font data, so a
	// single cache can serve multiple fonts.
	Font uint64

	// The signature of the rasterizer and its configuration.
	// See [mask.Rasterizer].
	Signature uint64

	Glyph uint16

	// Pixels per design unit on each axis.
	ScaleX, ScaleY float32

	Fract fract.Point
}

func (self Key) String() string {
	return "Key{font: " + strconv.FormatUint(self.Font, 16) +
		", sig: " + strconv.FormatUint(self.Signature, 16) +
		", glyph: " + strconv.Itoa(int(self.Glyph)) +
		", scale: " + strconv.FormatFloat(float64(self.ScaleX), 'g', -1, 32) +
		"x" + strconv.FormatFloat(float64(self.ScaleY), 'g', -1, 32) +
		", fract: " + self.Fract.String() + "}"
}

// Compact binary form of the key, used for in-flight deduplication.
func (self Key) flightID() string {
	var buffer [34]byte
	binary.LittleEndian.PutUint64(buffer[0 : ], self.Font)
	binary.LittleEndian.PutUint64(buffer[8 : ], self.Signature)
	binary.LittleEndian.PutUint16(buffer[16 : ], self.Glyph)
	binary.LittleEndian.PutUint32(buffer[18 : ], math.Float32bits(self.ScaleX))
	binary.LittleEndian.PutUint32(buffer[22 : ], math.Float32bits(self.ScaleY))
	binary.LittleEndian.PutUint32(buffer[26 : ], uint32(self.Fract.X))
	binary.LittleEndian.PutUint32(buffer[30 : ], uint32(self.Fract.Y))
	return string(buffer[ : ])
}

// A cached rasterization result. Entries are shared between all
// the users of a cache, so their masks must be treated as read-only.
type Entry struct {
	Mask *mask.Coverage
	Metrics sizer.GlyphMetrics
}

// Returns an approximation of the memory used by the entry.
func (self Entry) ApproxByteSize() int {
	const entryOverhead = 128 // key, metrics, list node and map slot
	if self.Mask == nil { return entryOverhead }
	return self.Mask.ApproxByteSize() + entryOverhead
}
