package glyphr

import "errors"
import "context"
import "testing"
import "testing/fstest"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

func TestFontLibrary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	lib := NewFontLibrary(nil)
	name, err := lib.ParseFontBytes(goregular.TTF)
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.True(t, lib.HasFont(name))
	assert.Equal(t, 1, lib.Size())
	_, err = lib.ParseFontBytes(goregular.TTF)
	assert.True(t, errors.Is(err, ErrAlreadyLoaded))

	font := lib.GetFont(name)
	require.NotNil(t, font)
	assert.Equal(t, name, font.Name())
	assert.Nil(t, lib.GetFont("Comic Sans"))

	var names []string
	err = lib.EachFont(func(name string, _ *Font) error {
		names = append(names, name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{ name }, names)
	stop := errors.New("stop")
	assert.Equal(t, stop, lib.EachFont(func(string, *Font) error { return stop }))

	assert.True(t, lib.RemoveFont(name))
	assert.False(t, lib.RemoveFont(name))
	assert.Zero(t, lib.Size())

	nameless, err := New(font.Source(), nil)
	require.NoError(t, err)
	assert.Error(t, lib.AddFont(nameless))
}

func TestFontLibraryParseAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	lib := NewFontLibrary(nil)
	blobs := [][]byte{ goregular.TTF, gomono.TTF, gobold.TTF, goregular.TTF }
	loaded, skipped, err := lib.ParseAll(context.Background(), blobs)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 3, lib.Size())

	// any failure aborts the whole batch
	lib = NewFontLibrary(nil)
	blobs = [][]byte{ goregular.TTF, []byte("broken"), gomono.TTF }
	_, _, err = lib.ParseAll(context.Background(), blobs)
	assert.True(t, errors.Is(err, ErrMalformedFont))
	assert.Zero(t, lib.Size())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = lib.ParseAll(ctx, [][]byte{ goregular.TTF })
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, lib.Size())
}

func TestFontLibraryParseDirFonts(t *testing.T) {
	filesys := fstest.MapFS{
		"fonts/regular.ttf": { Data: goregular.TTF },
		"fonts/mono.ttf": { Data: gomono.TTF },
		"fonts/copy.ttf": { Data: goregular.TTF },
		"fonts/readme.txt": { Data: []byte("not a font") },
		"fonts/nested/bold.ttf": { Data: gobold.TTF },
	}

	lib := NewFontLibrary(nil)
	loaded, skipped, err := lib.ParseDirFonts(filesys, "fonts")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 1, skipped)

	name, err := lib.ParseFontFS(filesys, "fonts/nested/bold.ttf")
	require.NoError(t, err)
	assert.True(t, lib.HasFont(name))
	_, err = lib.ParseFontFS(filesys, "fonts/readme.txt")
	assert.Error(t, err)
}
