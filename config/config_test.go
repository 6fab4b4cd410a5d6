package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(256, cfg.Capacity)
	assert.Equal(uint8(cpu.SP_INIT), cfg.StackPointer)
	assert.Equal(0, cfg.Hz)
	assert.Equal(COLOR_AUTO, cfg.Color)
	assert.NoError(cfg.Validate())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := map[string]struct {
		text  string
		check func(cfg *Config)
		err   error
	}{
		"empty": {
			text:  "",
			check: func(cfg *Config) { assert.Equal(Default(), cfg) },
		},
		"override": {
			text: "capacity = 1024\nstack_pointer = 0x80\nhz = 100\ntrace = true\ncolor = \"never\"\n",
			check: func(cfg *Config) {
				assert.Equal(1024, cfg.Capacity)
				assert.Equal(uint8(0x80), cfg.StackPointer)
				assert.Equal(100, cfg.Hz)
				assert.True(cfg.Trace)
				assert.False(cfg.Verbose)
				assert.Equal(COLOR_NEVER, cfg.Color)
			},
		},
		"unknown-key": {
			text: "speed = 3\n",
			err:  ErrConfigKey,
		},
		"bad-capacity": {
			text: "capacity = 300\n",
			err:  ErrConfigCapacity,
		},
		"small-capacity": {
			text: "capacity = 128\n",
			err:  ErrConfigCapacity,
		},
		"bad-hz": {
			text: "hz = -1\n",
			err:  ErrConfigHz,
		},
		"bad-color": {
			text: "color = \"pink\"\n",
			err:  ErrConfigColor,
		},
	}

	for name, entry := range table {
		cfg := Default()
		err := cfg.Decode(strings.NewReader(entry.text))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, name)
			continue
		}
		if !assert.NoError(err, name) {
			continue
		}
		entry.check(cfg)
	}
}

func TestDecode_Syntax(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	err := cfg.Decode(strings.NewReader("capacity = = 3"))
	assert.Error(err)
}

func TestUseColor(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.True(cfg.UseColor(true))
	assert.False(cfg.UseColor(false))

	cfg.Color = COLOR_ALWAYS
	assert.True(cfg.UseColor(false))

	cfg.Color = COLOR_NEVER
	assert.False(cfg.UseColor(true))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, FILE_NAME)
	assert.NoError(os.WriteFile(path, []byte("hz = 10\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(10, cfg.Hz)
	assert.Equal(256, cfg.Capacity)

	bad := filepath.Join(dir, "bad.toml")
	assert.NoError(os.WriteFile(bad, []byte("nope = 1\n"), 0o644))
	cfg, err = Load(bad)
	assert.Nil(cfg)
	assert.ErrorIs(err, ErrConfigKey)
	var fileErr ErrConfigFile
	if assert.ErrorAs(err, &fileErr) {
		assert.Equal(bad, fileErr.Path)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
