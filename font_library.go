package glyphr

import "io/fs"
import "errors"
import "context"
import "path"
import "fmt"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/glyphr/font"

// A collection of fonts accessible by name.
//
// The goal of a FontLibrary is to make it easy to load fonts in bulk
// and keep them all in a single place. All fonts are created with the
// options given to [NewFontLibrary]().
//
// FontLibrary is not safe for concurrent use, but the fonts it
// contains are as safe as their options make them.
type FontLibrary struct {
	fonts map[string]*Font
	opts *Options
}

// Creates a new, empty font library. The options will be used for
// all the fonts parsed through the library (nil for defaults).
func NewFontLibrary(opts *Options) *FontLibrary {
	if opts == nil { opts = DefaultOptions() }
	opts.validate()
	return &FontLibrary {
		fonts: make(map[string]*Font),
		opts: opts,
	}
}

// Returns the current number of fonts in the library.
func (self *FontLibrary) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *FontLibrary) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *FontLibrary) GetFont(name string) *Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// Returns false if the font can't be removed due to not being found.
func (self *FontLibrary) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Adds an existing font to the library. Fonts without a name can't
// be added. If a font with the same name has already been loaded,
// [ErrAlreadyLoaded] will be returned.
func (self *FontLibrary) AddFont(font *Font) error {
	if font.Name() == "" { return errors.New("can't add a font without a name") }
	if self.HasFont(font.Name()) { return ErrAlreadyLoaded }
	self.fonts[font.Name()] = font
	return nil
}

// Returns the name of the added font and any possible error.
// If error == nil, the font name will be non-empty.
//
// If a font with the same name has already been loaded,
// [ErrAlreadyLoaded] will be returned.
func (self *FontLibrary) ParseFontFrom(path string) (string, error) {
	fontBytes, err := font.ReadFromPath(path)
	if err != nil { return "", err }
	return self.ParseFontBytes(fontBytes)
}

// Same as [FontLibrary.ParseFontFrom](), but for arbitrary filesystems.
func (self *FontLibrary) ParseFontFS(filesys fs.FS, path string) (string, error) {
	fontBytes, err := font.ReadFromFS(filesys, path)
	if err != nil { return "", err }
	return self.ParseFontBytes(fontBytes)
}

// Similar to [FontLibrary.ParseFontFrom](), but taking the font bytes
// directly. The bytes must not be modified while the font is in use.
func (self *FontLibrary) ParseFontBytes(fontBytes []byte) (string, error) {
	font, err := Parse(fontBytes, self.opts)
	if err != nil { return "", err }
	return font.Name(), self.AddFont(font)
}

// Calls the given function for each font in the library, passing their
// names and content as arguments.
//
// If the given function returns a non-nil error, EachFont will immediately
// stop and return that error. Otherwise, EachFont will always return nil.
//
// Example code to print the names of all the fonts in the library:
//  fontLib.EachFont(func(name string, _ *glyphr.Font) error {
//      fmt.Println(name)
//      return nil
//  })
func (self *FontLibrary) EachFont(fontFunc func(string, *Font) error) error {
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil { return err }
	}
	return nil
}

// Parses multiple fonts in parallel and adds them to the library in
// the given order. Returns the number of fonts added and the number
// of fonts skipped (a font with the same name already exists).
//
// If any font fails to parse, no fonts are added and the first error
// is returned. Cancelling the context stops the pending parses.
func (self *FontLibrary) ParseAll(ctx context.Context, fontBlobs [][]byte) (int, int, error) {
	fonts := make([]*Font, len(fontBlobs))
	group, ctx := errgroup.WithContext(ctx)
	for i, fontBytes := range fontBlobs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil { return err }
			font, err := Parse(fontBytes, self.opts)
			if err != nil { return fmt.Errorf("font #%d: %w", i, err) }
			fonts[i] = font
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		tracer().Errorf("batch font parsing failed: %v", err)
		return 0, 0, err
	}

	loaded, skipped := 0, 0
	for _, font := range fonts {
		err := self.AddFont(font)
		if err != nil {
			tracer().Debugf("skipping font %q: %v", font.Name(), err)
			skipped += 1
		} else {
			loaded += 1
		}
	}
	return loaded, skipped, nil
}

// Walks the given directory non-recursively and adds all the .ttf and
// .otf fonts in it. Returns the number of fonts added, the number of
// fonts skipped (a font with the same name already exists in the
// FontLibrary) and any error that might happen during the process.
//
// Use [os.DirFS]() to load fonts from the local filesystem.
func (self *FontLibrary) ParseDirFonts(filesys fs.FS, dirName string) (int, int, error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	loaded, skipped := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !font.HasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFontFS(filesys, path.Join(dirName, entry.Name()))
		if errors.Is(err, ErrAlreadyLoaded) {
			skipped += 1
			continue
		}
		if err != nil { return loaded, skipped, err }
		loaded += 1
	}
	return loaded, skipped, nil
}
