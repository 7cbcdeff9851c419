package font

import "sync"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

var testFontA *SfntSource // Go Regular
var testFontB *SfntSource // Go Mono
var assetsLoadOnce sync.Once

// A rune that none of the test fonts maps.
const testMissingRune = '\U0010FFFD'

func ensureTestAssetsLoaded() {
	assetsLoadOnce.Do(func() {
		var err error
		testFontA, _, err = ParseFromBytes(goregular.TTF)
		if err != nil { panic(err) }
		testFontB, _, err = ParseFromBytes(gomono.TTF)
		if err != nil { panic(err) }
	})
}
