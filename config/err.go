package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrConfigKey      = errors.New(f("unknown configuration key"))
	ErrConfigCapacity = errors.New(f("capacity must be a power of two, at least 256"))
	ErrConfigHz       = errors.New(f("hz must not be negative"))
	ErrConfigColor    = errors.New(f("color must be auto, always or never"))
)

// ErrConfigFile is an error while loading a configuration file.
type ErrConfigFile struct {
	Path string
	Err  error
}

func (err ErrConfigFile) Error() string {
	return fmt.Sprintf("%v: %v", err.Path, err.Err)
}

func (err ErrConfigFile) Unwrap() error {
	return err.Err
}

func errUnknownKeys(keys []string) error {
	return errors.Join(ErrConfigKey, errors.New(strings.Join(keys, ", ")))
}
