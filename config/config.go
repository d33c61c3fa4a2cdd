package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"termsweep/engine"
)

var (
	cfgFile = "termsweep/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	HiddenColor    int    `json:"hidden"`
	HiddenColorAlt int    `json:"hidden_alt"`
	RevealedColor  int    `json:"revealed"`
	FlagColor      int    `json:"flag"`
	MineColor      int    `json:"mine"`
	CursorColorBG  int    `json:"cursor_bg"`
	Digits         [8]int `json:"digits"`
}

type ConfigSymbols struct {
	Hidden rune `json:"hidden"`
	Flag   rune `json:"flag"`
	Mine   rune `json:"mine"`
	Blank  rune `json:"blank"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameSettings holds the board constants used for every new game.
type GameSettings struct {
	Size  int   `json:"size"`
	Mines int   `json:"mines"`
	Seed  int64 `json:"seed"`
}

// EngineConfig converts the settings into an engine configuration.
func (s GameSettings) EngineConfig() engine.GameConfig {
	return engine.GameConfig{
		Size:  s.Size,
		Mines: s.Mines,
		Seed:  s.Seed,
	}
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Hidden, c.Theme.Symbols.Flag, c.Theme.Symbols.Mine, c.Theme.Symbols.Blank} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.Size < 3 || c.Game.Size > 26 {
		return &InvalidConfig{fmt.Sprintf("board size must be between 3 and 26, got %d", c.Game.Size)}
	}
	// Mine placement keeps the first click and its 8 neighbors clear.
	if maxMines := c.Game.Size*c.Game.Size - 9; c.Game.Mines < 0 || c.Game.Mines > maxMines {
		return &InvalidConfig{fmt.Sprintf("mine count must be between 0 and %d for a %dx%d board, got %d", maxMines, c.Game.Size, c.Game.Size, c.Game.Mines)}
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
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
