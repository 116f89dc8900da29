package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lispobj/obj"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	file, err := Decode(strings.NewReader("word_size = 32\nseed = 7\ntrim_newlines = false\n"))
	assert.NoError(err)
	assert.Equal(File{WordSize: 32, Seed: 7, TrimNewlines: false}, file)
	assert.Equal(obj.KIND_TETRA, file.Obj().RegKind())
}

func TestDecode_Defaults(t *testing.T) {
	assert := assert.New(t)

	file, err := Decode(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(Default, file)
	assert.Equal(obj.KIND_OCTA, file.Obj().RegKind())

	file, err = Decode(strings.NewReader("seed = 3\n"))
	assert.NoError(err)
	assert.Equal(64, file.WordSize)
	assert.Equal(int64(3), file.Seed)
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(strings.NewReader("word_size = 16\n"))
	assert.ErrorIs(err, ErrWordSize)
	assert.ErrorIs(err, obj.ErrWordSize)

	_, err = Decode(strings.NewReader("word_size = 64\ncolour = \"red\"\n"))
	var undecoded ErrUndecoded
	if assert.ErrorAs(err, &undecoded) {
		assert.Equal(ErrUndecoded{"colour"}, undecoded)
	}

	_, err = Decode(strings.NewReader("word_size = \n"))
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "lispobj.toml")
	assert.NoError(os.WriteFile(path, []byte("word_size = 32\n"), 0o644))

	file, err := Load(path)
	assert.NoError(err)
	assert.Equal(32, file.WordSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	a := Default.Random()
	b := Default.Random()
	for range 10 {
		assert.Equal(a.Range(0, 1000), b.Range(0, 1000))
	}
}
