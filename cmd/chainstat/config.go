package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/chainmap/hashfunc"
	"go.uber.org/zap/zapcore"
	"math/rand/v2"
)

// InvalidConfig - Custom error to inform that the configuration can not be used
type InvalidConfig struct {
	msg string
}

// Error - Used to notify that the configuration is invalid
func (I InvalidConfig) Error() string {
	if I.msg == "" {
		return "invalid configuration"
	}
	return I.msg
}

// Config - Configuration of a chainstat run, read from a TOML file
//   - Algorithm is the name of the hash algorithm, one of maphash, xxhash or crc32
//   - Seed is the seed for xxhash and crc32, 0 gives a random seed for xxhash and plain crc32.ChecksumIEEE values for crc32
//   - Keys is the number of keys to generate when no key file is given
//   - RemoveEvery removes every n-th loaded key after loading, 0 removes nothing
//   - Distribution includes the per bucket distribution in the output
//   - LogLevel is a zap level name such as debug or info
type Config struct {
	Algorithm    string `toml:"algorithm"`
	Seed         uint64 `toml:"seed"`
	Keys         int    `toml:"keys"`
	RemoveEvery  int    `toml:"remove_every"`
	Distribution bool   `toml:"distribution"`
	LogLevel     string `toml:"log_level"`
}

// defaultConfig - Returns the configuration used when no file is given, a file only overrides what it sets
func defaultConfig() Config {
	return Config{
		Algorithm: hashfunc.MapHash,
		Keys:      100000,
		LogLevel:  "info",
	}
}

// LoadConfig - Reads configuration from a TOML file on top of the defaults.
//   - fileName is the TOML file to read, an empty name gives the defaults
//
// It returns:
//   - conf is the resulting configuration
//   - err is either of type InvalidConfig or a standard error if the file could not be decoded
func LoadConfig(fileName string) (conf Config, err error) {
	conf = defaultConfig()

	if fileName != "" {
		_, err = toml.DecodeFile(fileName, &conf)
		if err != nil {
			err = fmt.Errorf("error while decoding config file %s: %s", fileName, err)
			return
		}
	}

	err = conf.validate()

	return
}

// validate - Checks that the configuration can be used
func (C Config) validate() error {
	if _, err := hashfunc.NewHashAlgorithm(C.Algorithm, C.Seed); err != nil {
		return InvalidConfig{msg: err.Error()}
	}
	if C.Keys < 0 {
		return InvalidConfig{msg: "keys can not be negative"}
	}
	if C.RemoveEvery < 0 {
		return InvalidConfig{msg: "remove_every can not be negative"}
	}
	if _, err := C.level(); err != nil {
		return InvalidConfig{msg: fmt.Sprintf("invalid log_level: %s", err)}
	}

	return nil
}

// hashAlgorithm - Returns the configured hash algorithm, drawing a random xxhash seed if none is configured
func (C Config) hashAlgorithm() (hashfunc.HashAlgorithm, error) {
	seed := C.Seed
	if seed == 0 && C.Algorithm == hashfunc.XXHash {
		seed = rand.Uint64()
	}

	return hashfunc.NewHashAlgorithm(C.Algorithm, seed)
}

// level - Returns the configured log level
func (C Config) level() (level zapcore.Level, err error) {
	err = level.UnmarshalText([]byte(C.LogLevel))
	return
}
