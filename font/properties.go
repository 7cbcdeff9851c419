package font

import "errors"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/glyphr/outline"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(source *SfntSource, property sfnt.NameID) (string, error) {
	buffer := source.getBuffer()
	str, err := source.font.Name(buffer, property)
	source.releaseBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(source *SfntSource) (string, error) {
	return GetProperty(source, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of: Regular, Italic, Bold, Bold Italic.
func GetSubfamily(source *SfntSource) (string, error) {
	return GetProperty(source, sfnt.NameIDSubfamily)
}

// Returns the name of the given font. If the information is missing,
// [ErrNotFound] will be returned.
func GetName(source *SfntSource) (string, error) {
	return GetProperty(source, sfnt.NameIDFull)
}

func GetIdentifier(source *SfntSource) (string, error) {
	return GetProperty(source, sfnt.NameIDUniqueIdentifier)
}

// Returns the runes in the given text that can't be represented by the
// font. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
//
// Works with any [outline.Source], so it's also useful to check fonts
// before choosing a fallback.
func GetMissingRunes(source outline.Source, text string) []rune {
	missing := make([]rune, 0)
	for _, codePoint := range text {
		_, found := source.GlyphIndex(codePoint)
		if !found { missing = append(missing, codePoint) }
	}
	return missing
}
