// Package config holds the LS-8 machine configuration, decoded from TOML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shibukawa/configdir"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/memory"
)

const (
	VENDOR    = "ezrec"
	APP       = "ls8"
	FILE_NAME = "config.toml"
)

const (
	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)

// Config is the machine configuration.
//
//	capacity = 256
//	stack_pointer = 0xf4
//	hz = 0
//	verbose = false
//	trace = false
//	color = "auto"
type Config struct {
	Capacity     int    `toml:"capacity"`      // Memory size in bytes.
	StackPointer uint8  `toml:"stack_pointer"` // SP after reset.
	Hz           int    `toml:"hz"`            // Instructions per second; 0 runs unpaced.
	Verbose      bool   `toml:"verbose"`       // Verbose logging.
	Trace        bool   `toml:"trace"`         // Per-instruction trace.
	Color        string `toml:"color"`         // One of auto, always or never.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Capacity:     memory.CAPACITY_DEFAULT,
		StackPointer: cpu.SP_INIT,
		Hz:           0,
		Color:        COLOR_AUTO,
	}
}

// Dirs are the configuration directories searched by Find.
func Dirs() configdir.ConfigDir {
	return configdir.New(VENDOR, APP)
}

// Decode reads TOML from r over the values already in cfg.
// Unknown keys are an error.
func (cfg *Config) Decode(r io.Reader) (err error) {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return
	}

	undecoded := md.Undecoded()
	if len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = errUnknownKeys(keys)
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	if cfg.Capacity < memory.CAPACITY_MIN || cfg.Capacity&(cfg.Capacity-1) != 0 {
		return ErrConfigCapacity
	}
	if cfg.Hz < 0 {
		return ErrConfigHz
	}
	switch cfg.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		return ErrConfigColor
	}
	return
}

// UseColor reports if output should be coloured, given whether it is a terminal.
func (cfg *Config) UseColor(tty bool) bool {
	switch cfg.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	default:
		return tty
	}
}

// Load returns the default configuration overridden by the file at path.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = parse(path, data)
	return
}

// Find returns the path of the first config.toml in the configuration
// directories, or an empty string.
func Find() string {
	folder := Dirs().QueryFolderContainsFile(FILE_NAME)
	if folder == nil {
		return ""
	}
	return folder.Path + string(os.PathSeparator) + FILE_NAME
}

// LoadDefault loads config.toml from the configuration directories.
// With no file present, the defaults are returned.
func LoadDefault() (cfg *Config, err error) {
	folder := Dirs().QueryFolderContainsFile(FILE_NAME)
	if folder == nil {
		cfg = Default()
		return
	}

	data, err := folder.ReadFile(FILE_NAME)
	if err != nil {
		return
	}

	cfg, err = parse(Find(), data)
	return
}

func parse(path string, data []byte) (cfg *Config, err error) {
	cfg = Default()
	err = cfg.Decode(bytes.NewReader(data))
	if err != nil {
		cfg = nil
		err = ErrConfigFile{Path: path, Err: err}
	}
	return
}
