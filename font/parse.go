package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"
import "compress/gzip"

import "golang.org/x/image/font/sfnt"

// Parses the given bytes with [sfnt.Parse]() and wraps the result in
// an [SfntSource], also including the font name in the returned values.
// The bytes must not be modified while the font is in use.
//
// This is a low level function; most users will prefer to go through
// glyphr.Parse() or a glyphr.FontLibrary instead.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func ParseFromBytes(fontBytes []byte) (*SfntSource, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	source, err := NewSfntSource(newFont)
	if err != nil { return nil, "", err }
	fontName, err := GetName(source)
	return source, fontName, err
}

// Attempts to parse a font located the given filepath and returns it
// along its name and any possible error. Supported formats are .ttf
// and .otf, optionally gzipped (.ttf.gz, .otf.gz).
func ParseFromPath(path string) (*SfntSource, string, error) {
	fontBytes, err := ReadFromPath(path)
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*SfntSource, string, error) {
	fontBytes, err := ReadFromFS(filesys, path)
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Reads the raw bytes of the font at the given path, checking
// that the path has a valid .ttf or .otf extension first.
// Gzipped fonts are decompressed.
func ReadFromPath(path string) ([]byte, error) {
	valid, gzipped := acceptFontPath(path)
	if !valid {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return readFontAndClose(file, gzipped)
}

// Same as [ReadFromPath](), but for embedded filesystems.
func ReadFromFS(filesys fs.FS, path string) ([]byte, error) {
	valid, gzipped := acceptFontPath(path)
	if !valid {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return readFontAndClose(file, gzipped)
}

// ---- helpers ----

func readFileAndClose(file io.ReadCloser) ([]byte, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return fontBytes, nil
}

func readFontAndClose(file io.ReadCloser, gzipped bool) ([]byte, error) {
	if !gzipped { return readFileAndClose(file) }
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	fontBytes, err := readFileAndClose(gzipReader)
	closeErr := file.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, closeErr }
	return fontBytes, nil
}

// Whether the font path ends in .ttf or .otf, optionally
// followed by .gz.
func HasValidFontExtension(path string) bool {
	valid, _ := acceptFontPath(path)
	return valid
}

// Returns whether the path has a valid font extension, and
// whether it's gzipped.
func acceptFontPath(path string) (bool, bool) {
	path, gzipped := strings.CutSuffix(path, ".gz")
	return hasFontExtension(path), gzipped
}

func hasFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	if path[len(path) - 4] != '.' { return false }
	return true
}
