package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "reversi-local/config.json"
)

// Board sizes outside this range cannot be shown with a..z column names.
const (
	MinBoardSize = 4
	MaxBoardSize = 26
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	HintColor         int `json:"hint"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackPiece  rune `json:"black"`
	WhitePiece  rune `json:"white"`
	Hint        rune `json:"hint"`
	BoardSquare rune `json:"board"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowHints                bool          `json:"show_hints"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds settings for new games.
type GameDefaults struct {
	DefaultBoardSize int  `json:"default_board_size"`
	FlipCaptures     bool `json:"flip_captures"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackPiece, s.WhitePiece, s.Hint, s.BoardSquare} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return ValidateBoardSize(c.Game.DefaultBoardSize)
}

// ValidateBoardSize checks that size is within MinBoardSize..MaxBoardSize.
func ValidateBoardSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, size)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
