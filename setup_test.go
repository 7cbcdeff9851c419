package glyphr

import "testing"

import "github.com/stretchr/testify/require"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

// A rune that none of the test fonts maps.
const testMissingRune = '\U0010FFFD'

func requireUnmapped(t *testing.T, font *Font, codePoint rune) {
	t.Helper()
	_, found := font.Source().GlyphIndex(codePoint)
	require.False(t, found, "font %q maps U+%04X", font.Name(), codePoint)
}

func noCacheOptions() *Options {
	opts := DefaultOptions()
	opts.CacheCapacity = -1
	return opts
}

func mustParse(t *testing.T, fontBytes []byte, opts *Options) *Font {
	t.Helper()
	font, err := Parse(fontBytes, opts)
	require.NoError(t, err)
	return font
}

func testRegular(t *testing.T, opts *Options) *Font {
	return mustParse(t, goregular.TTF, opts)
}

func testMono(t *testing.T, opts *Options) *Font {
	return mustParse(t, gomono.TTF, opts)
}

func coverageSum(pix []uint8) int {
	var sum int
	for _, value := range pix { sum += int(value) }
	return sum
}

func coverageMax(pix []uint8) uint8 {
	var max uint8
	for _, value := range pix {
		if value > max { max = value }
	}
	return max
}
