//go:build !tinygo

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  line_bonus: 100\ntimer:\n  hz: 512\n"))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Game.LineBonus)
	assert.Equal(t, 512, cfg.Timer.Hz)
	assert.Equal(t, "bag", cfg.Game.Randomizer)
	assert.Equal(t, 8, cfg.Display.BlockSize)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("game: [1, 2"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcdtris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  cols: 10\n  rows: 16\ngame:\n  randomizer: simple\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cols, rows := cfg.Geometry()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 16, rows)
	assert.Equal(t, "simple", cfg.Game.Randomizer)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcdtris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  block_size: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
