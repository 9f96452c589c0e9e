package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	LeaderKey    string `toml:"leader-key"`
	PaletteLimit int    `toml:"palette-limit"`
}

type Theme struct {
	Foreground                 string `toml:"foreground"`
	Background                 string `toml:"background"`
	StatuslineForeground       string `toml:"statusline-foreground"`
	StatuslineBackground       string `toml:"statusline-background"`
	LineNumberForeground       string `toml:"line-number-foreground"`
	LineNumberActiveForeground string `toml:"line-number-active-foreground"`
	PaletteForeground          string `toml:"palette-foreground"`
	PaletteBackground          string `toml:"palette-background"`
	PaletteSelectedForeground  string `toml:"palette-selected-foreground"`
	PaletteSelectedBackground  string `toml:"palette-selected-background"`
	HintKeyForeground          string `toml:"hint-key-foreground"`
	HintForeground             string `toml:"hint-foreground"`
	HintBackground             string `toml:"hint-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			LeaderKey:    "space",
			PaletteLimit: 50,
		},
		Theme: Theme{
			Foreground:                 "#B3B1AD",
			Background:                 "#0A0E14",
			StatuslineForeground:       "#B3B1AD",
			StatuslineBackground:       "#0F1419",
			LineNumberForeground:       "#3E4B59",
			LineNumberActiveForeground: "#B3B1AD",
			PaletteForeground:          "#B3B1AD",
			PaletteBackground:          "#0F1419",
			PaletteSelectedForeground:  "#0A0E14",
			PaletteSelectedBackground:  "#E6B450",
			HintKeyForeground:          "#59C2FF",
			HintForeground:             "#B3B1AD",
			HintBackground:             "#0F1419",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.LeaderKey != "" {
		cfg.Editor.LeaderKey = userCfg.Editor.LeaderKey
	}
	if userCfg.Editor.PaletteLimit > 0 {
		cfg.Editor.PaletteLimit = userCfg.Editor.PaletteLimit
	}
	if userCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = userCfg.Theme.Foreground
	}
	if userCfg.Theme.Background != "" {
		cfg.Theme.Background = userCfg.Theme.Background
	}
	if userCfg.Theme.StatuslineForeground != "" {
		cfg.Theme.StatuslineForeground = userCfg.Theme.StatuslineForeground
	}
	if userCfg.Theme.StatuslineBackground != "" {
		cfg.Theme.StatuslineBackground = userCfg.Theme.StatuslineBackground
	}
	if userCfg.Theme.LineNumberForeground != "" {
		cfg.Theme.LineNumberForeground = userCfg.Theme.LineNumberForeground
	}
	if userCfg.Theme.LineNumberActiveForeground != "" {
		cfg.Theme.LineNumberActiveForeground = userCfg.Theme.LineNumberActiveForeground
	}
	if userCfg.Theme.PaletteForeground != "" {
		cfg.Theme.PaletteForeground = userCfg.Theme.PaletteForeground
	}
	if userCfg.Theme.PaletteBackground != "" {
		cfg.Theme.PaletteBackground = userCfg.Theme.PaletteBackground
	}
	if userCfg.Theme.PaletteSelectedForeground != "" {
		cfg.Theme.PaletteSelectedForeground = userCfg.Theme.PaletteSelectedForeground
	}
	if userCfg.Theme.PaletteSelectedBackground != "" {
		cfg.Theme.PaletteSelectedBackground = userCfg.Theme.PaletteSelectedBackground
	}
	if userCfg.Theme.HintKeyForeground != "" {
		cfg.Theme.HintKeyForeground = userCfg.Theme.HintKeyForeground
	}
	if userCfg.Theme.HintForeground != "" {
		cfg.Theme.HintForeground = userCfg.Theme.HintForeground
	}
	if userCfg.Theme.HintBackground != "" {
		cfg.Theme.HintBackground = userCfg.Theme.HintBackground
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("VED_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ved"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ved"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
