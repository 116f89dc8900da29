// Package config loads the lispobj configuration file.
//
// The file is TOML:
//
//	word_size = 64        # native register width: 32 or 64
//	seed = 1              # random source seed
//	trim_newlines = true  # strip CR/LF from input lines
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/lispobj/obj"
	"github.com/ezrec/lispobj/translate"
)

var f = translate.From

var (
	// ErrWordSize reports an unsupported word_size; it is obj.ErrWordSize.
	ErrWordSize = obj.ErrWordSize
)

// ErrUndecoded lists configuration keys that were not recognized.
type ErrUndecoded []string

func (err ErrUndecoded) Error() string {
	return f("unknown keys %v", []string(err))
}

// File is the content of a configuration file.
type File struct {
	WordSize     int   `toml:"word_size"`
	Seed         int64 `toml:"seed"`
	TrimNewlines bool  `toml:"trim_newlines"`
}

// Default is the configuration used when no file is given.
var Default = File{
	WordSize:     int(obj.WORD_SIZE_64),
	Seed:         1,
	TrimNewlines: true,
}

// Decode reads a configuration from r. Keys absent from the input keep
// their Default values.
func Decode(r io.Reader) (file File, err error) {
	file = Default

	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		var keys ErrUndecoded
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		err = keys
		return
	}

	err = file.Validate()
	return
}

// Load reads a configuration file by path.
func Load(path string) (file File, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Validate checks the configuration values.
func (file File) Validate() (err error) {
	switch obj.WordSize(file.WordSize) {
	case obj.WORD_SIZE_32, obj.WORD_SIZE_64:
	default:
		err = ErrWordSize
	}
	return
}

// Obj returns the value system configuration.
func (file File) Obj() obj.Config {
	return obj.Config{WordSize: obj.WordSize(file.WordSize)}
}

// Random returns the random source seeded from the configuration.
func (file File) Random() obj.Random {
	return obj.NewRandom(file.Seed)
}
