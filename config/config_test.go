package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
	assert.Equal(t, 8, c.Game.DefaultBoardSize)
	assert.False(t, c.Game.FlipCaptures)
}

func TestValidateRejectsControlSymbols(t *testing.T) {
	c := DefaultConfig
	c.Theme.Symbols.Hint = '\t'
	err := c.Validate()
	var invalid *InvalidConfig
	require.ErrorAs(t, err, &invalid)
}

func TestValidateDefaultBoardSize(t *testing.T) {
	for _, size := range []int{0, 2, 3, 27, 28} {
		c := DefaultConfig
		c.Game.DefaultBoardSize = size
		assert.Error(t, c.Validate(), "size %d", size)
	}
	for _, size := range []int{4, 5, 9, 10, 26} {
		c := DefaultConfig
		c.Game.DefaultBoardSize = size
		assert.NoError(t, c.Validate(), "size %d", size)
	}
}

func TestValidateBoardSize(t *testing.T) {
	var invalid *InvalidConfig
	require.ErrorAs(t, ValidateBoardSize(MaxBoardSize+2), &invalid)
	require.ErrorAs(t, ValidateBoardSize(MinBoardSize-1), &invalid)
	assert.NoError(t, ValidateBoardSize(7))
}

func TestSaveAndReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.Game.DefaultBoardSize = 10
	c.Game.FlipCaptures = true
	c.Theme.Colors.HintColor = 226
	require.NoError(t, saveCfgFile(path, &c, 0600))

	got := DefaultConfig
	require.NoError(t, readCfgFile(path, &got))
	assert.Equal(t, c, got)
}

func TestReadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game": {"default_board_size": 6}}`), 0600))

	got := DefaultConfig
	require.NoError(t, readCfgFile(path, &got))
	assert.Equal(t, 6, got.Game.DefaultBoardSize)
	assert.Equal(t, DefaultTheme, got.Theme)
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game": `), 0600))

	got := DefaultConfig
	err := readCfgFile(path, &got)
	var invalid *InvalidConfig
	require.ErrorAs(t, err, &invalid)
}

func TestReadMissingFileIsNotAnError(t *testing.T) {
	got := DefaultConfig
	require.NoError(t, readCfgFile(filepath.Join(t.TempDir(), "missing.json"), &got))
	assert.Equal(t, DefaultConfig, got)
}
