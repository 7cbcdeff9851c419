package layout

import "github.com/go-text/typesetting/segmenter"

// Line break opportunity before a character. Stronger
// classes compare greater.
type breakClass uint8
const (
	breakNone breakClass = iota
	breakSoft
	breakHard
)

// Finds the line break opportunities before each of the given runes.
// The runes of previous spans are considered through self.prevRune,
// so breaks at span boundaries are also detected.
func (self *lineBreaker) classify(runes []rune, allowSoft, allowHard bool) []breakClass {
	self.breaks = resizeBreaks(self.breaks, len(runes))

	prev, hasPrev := self.prevRune, self.hasPrevRune
	for i, codePoint := range runes {
		if hasPrev && isMandatoryBreak(prev, codePoint) {
			if allowHard {
				self.breaks[i] = breakHard
			} else if allowSoft {
				self.breaks[i] = breakSoft
			}
		}
		prev, hasPrev = codePoint, true
	}

	if allowSoft && len(runes) > 0 {
		offset := 0
		self.context = self.context[ : 0]
		if self.hasPrevRune {
			self.context = append(self.context, self.prevRune)
			offset = 1
		}
		self.context = append(self.context, runes...)
		self.segmenter.Init(self.context)
		iter := self.segmenter.LineIterator()
		for iter.Next() {
			line := iter.Line()
			index := line.Offset + len(line.Runes) - offset
			if index < 0 || index >= len(runes) { continue }
			if self.breaks[index] == breakNone {
				self.breaks[index] = breakSoft
			}
		}
	}

	if len(runes) > 0 {
		self.prevRune, self.hasPrevRune = runes[len(runes) - 1], true
	}
	return self.breaks
}

type lineBreaker struct {
	segmenter segmenter.Segmenter
	context []rune
	breaks []breakClass
	prevRune rune
	hasPrevRune bool
}

func (self *lineBreaker) reset() {
	self.prevRune, self.hasPrevRune = 0, false
}

// Mandatory breaks after BK, CR, LF and NL characters, with
// CR LF sequences kept together.
func isMandatoryBreak(prev, curr rune) bool {
	switch prev {
	case '\n', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	case '\r':
		return curr != '\n'
	default:
		return false
	}
}

func resizeBreaks(breaks []breakClass, size int) []breakClass {
	if cap(breaks) >= size {
		breaks = breaks[ : size]
	} else {
		breaks = make([]breakClass, size)
	}
	clear(breaks)
	return breaks
}
