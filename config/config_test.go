package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if c.Game.Size != 10 || c.Game.Mines != 10 {
		t.Fatalf("expected 10x10 with 10 mines, got %+v", c.Game)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"control symbol", func(c *Config) { c.Theme.Symbols.Flag = '\t' }, false},
		{"c1 symbol", func(c *Config) { c.Theme.Symbols.Mine = 130 }, false},
		{"too small", func(c *Config) { c.Game.Size = 2 }, false},
		{"too large", func(c *Config) { c.Game.Size = 27 }, false},
		{"negative mines", func(c *Config) { c.Game.Mines = -1 }, false},
		{"full board", func(c *Config) { c.Game.Size = 4; c.Game.Mines = 7 }, true},
		{"overfull board", func(c *Config) { c.Game.Size = 4; c.Game.Mines = 8 }, false},
		{"no mines", func(c *Config) { c.Game.Mines = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.modify(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok {
				var invalid *InvalidConfig
				if !errors.As(err, &invalid) {
					t.Fatalf("expected *InvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestReadCfgFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"game": {"mines": 12, "seed": 9}}`), 0644); err != nil {
		t.Fatal(err)
	}

	c := DefaultConfig
	if err := readCfgFile(path, &c); err != nil {
		t.Fatal(err)
	}
	if c.Game.Mines != 12 || c.Game.Seed != 9 {
		t.Fatalf("file values not applied: %+v", c.Game)
	}
	if c.Game.Size != 10 || c.Theme.Symbols.Flag != DefaultTheme.Symbols.Flag {
		t.Fatal("values missing from the file should keep their defaults")
	}
}

func TestReadCfgFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"game": `), 0644); err != nil {
		t.Fatal(err)
	}
	c := DefaultConfig
	var invalid *InvalidConfig
	if err := readCfgFile(path, &c); !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidConfig, got %v", err)
	}
}

func TestReadCfgFileMissing(t *testing.T) {
	c := DefaultConfig
	if err := readCfgFile(filepath.Join(t.TempDir(), "nope.json"), &c); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
}

func TestSaveCfgFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.Game.Seed = 77
	if err := saveCfgFile(path, &c, 0644); err != nil {
		t.Fatal(err)
	}
	var loaded Config
	if err := readCfgFile(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Game != c.Game || loaded.Theme.Colors.Digits != c.Theme.Colors.Digits {
		t.Fatalf("saved config did not load back: %+v", loaded)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := GameSettings{Size: 8, Mines: 5, Seed: 3}.EngineConfig()
	if cfg.Size != 8 || cfg.Mines != 5 || cfg.Seed != 3 {
		t.Fatalf("unexpected engine config: %+v", cfg)
	}
}
