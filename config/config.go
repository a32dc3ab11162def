package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

type Config struct {
	TabWidth    int    `json:"tab_width"`
	DefaultFile string `json:"default_file"`
	Theme       string `json:"theme"`
	AtomicSave  bool   `json:"atomic_save"`
	LogFile     string `json:"log_file"`
}

type ColorScheme struct {
	Name       string
	Background tcell.Color
	Foreground tcell.Color
	Accent     tcell.Color // title, menu hint and filename
	Border     tcell.Color
	MenuBg     tcell.Color
	MenuFg     tcell.Color
	PromptFg   tcell.Color
	ErrorFg    tcell.Color
}

var Themes = map[string]*ColorScheme{
	"cyan": {
		Name:       "Cyan",
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorWhite,
		Accent:     tcell.ColorTeal,
		Border:     tcell.ColorWhite,
		MenuBg:     tcell.ColorBlack,
		MenuFg:     tcell.ColorWhite,
		PromptFg:   tcell.ColorWhite,
		ErrorFg:    tcell.ColorRed,
	},
	"light": {
		Name:       "Light",
		Background: tcell.ColorWhite,
		Foreground: tcell.ColorBlack,
		Accent:     tcell.ColorNavy,
		Border:     tcell.ColorGray,
		MenuBg:     tcell.ColorLightGray,
		MenuFg:     tcell.ColorBlack,
		PromptFg:   tcell.ColorBlack,
		ErrorFg:    tcell.ColorMaroon,
	},
	"monokai": {
		Name:       "Monokai",
		Background: tcell.NewRGBColor(39, 40, 34),
		Foreground: tcell.NewRGBColor(248, 248, 242),
		Accent:     tcell.NewRGBColor(102, 217, 239),
		Border:     tcell.NewRGBColor(144, 144, 128),
		MenuBg:     tcell.NewRGBColor(73, 72, 62),
		MenuFg:     tcell.NewRGBColor(248, 248, 242),
		PromptFg:   tcell.NewRGBColor(230, 219, 116),
		ErrorFg:    tcell.NewRGBColor(249, 38, 114),
	},
	"nord": {
		Name:       "Nord",
		Background: tcell.NewRGBColor(46, 52, 64),
		Foreground: tcell.NewRGBColor(236, 239, 244),
		Accent:     tcell.NewRGBColor(136, 192, 208),
		Border:     tcell.NewRGBColor(76, 86, 106),
		MenuBg:     tcell.NewRGBColor(67, 76, 94),
		MenuFg:     tcell.NewRGBColor(236, 239, 244),
		PromptFg:   tcell.NewRGBColor(235, 203, 139),
		ErrorFg:    tcell.NewRGBColor(191, 97, 106),
	},
}

func Default() *Config {
	return &Config{
		TabWidth:    4,
		DefaultFile: "untitled.txt",
		Theme:       "cyan",
		AtomicSave:  true,
		LogFile:     defaultLogPath(),
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["cyan"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pedit", "settings.json")
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "pedit", "pedit.log")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.DefaultFile == "" {
		c.DefaultFile = "untitled.txt"
	}
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
