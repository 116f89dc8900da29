package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lispobj/config"
	"github.com/ezrec/lispobj/obj"
)

func TestReadLines(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	assert.NoError(os.WriteFile(first, []byte("alpha\n\nbeta\n"), 0o644))
	assert.NoError(os.WriteFile(second, []byte("gamma"), 0o644))

	list, read, err := readLines([]string{first, second}, config.Default, false)
	assert.NoError(err)
	assert.Equal(4, read)
	assert.Equal(`("alpha" "beta" "gamma")`, list.String())
	list.Free()
}

func TestReadLines_Missing(t *testing.T) {
	assert := assert.New(t)

	list, _, err := readLines([]string{filepath.Join(t.TempDir(), "missing.txt")}, config.Default, false)
	assert.ErrorIs(err, os.ErrNotExist)
	assert.Nil(list)
	assert.Equal(uint(0), obj.Length(list))
}
