package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML override file. Unset keys keep the built-in values.
type fileConfig struct {
	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"window"`
	Menu struct {
		ItemSize       float64  `toml:"item_size"`
		LabelWidth     float64  `toml:"label_width"`
		LabelOffset    float64  `toml:"label_offset"`
		DurationMillis *int     `toml:"duration_ms"`
		Curve          string   `toml:"curve"`
		Gravity        string   `toml:"gravity"`
		Language       string   `toml:"language"`
		Items          []string `toml:"items"`
		Font           string   `toml:"font"`
	} `toml:"menu"`
	Debug struct {
		StartOpen bool   `toml:"start_open"`
		Overlay   bool   `toml:"overlay"`
		LogLevel  string `toml:"log_level"`
	} `toml:"debug"`
}

// DefaultTOML documents every supported key.
const DefaultTOML = `# foldmenu configuration

[window]
width = 640
height = 480

[menu]
item_size = 56.0
label_width = 180.0
label_offset = 24.0
duration_ms = 100
curve = "hesitate"   # hesitate | linear | outcubic | inoutquad
gravity = "end"      # start | end
language = "en"
items = ["close", "send_message", "like", "add_friend", "add_favorite", "block_user"]
# font = "/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf"

[debug]
start_open = false
overlay = false
log_level = "info"
`

// LoadFile applies the TOML file at path on top of the current globals. A
// missing file is not an error.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes a TOML document and overlays it on the globals.
func Apply(data []byte) error {
	var fc fileConfig
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&fc)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("decode config: unknown key %s", undecoded[0])
	}

	if fc.Window.Width > 0 {
		C.Width = fc.Window.Width
	}
	if fc.Window.Height > 0 {
		C.Height = fc.Window.Height
	}

	m := fc.Menu
	if m.ItemSize > 0 {
		Menu.ItemSize = m.ItemSize
	}
	if m.LabelWidth > 0 {
		Menu.LabelWidth = m.LabelWidth
	}
	if m.LabelOffset > 0 {
		Menu.LabelOffset = m.LabelOffset
	}
	if m.DurationMillis != nil {
		if *m.DurationMillis < 0 {
			return fmt.Errorf("decode config: duration_ms must not be negative, got %d", *m.DurationMillis)
		}
		Menu.DurationMillis = *m.DurationMillis
	}
	if m.Curve != "" {
		Menu.Curve = m.Curve
	}
	if m.Gravity != "" {
		Menu.Gravity = m.Gravity
	}
	if m.Language != "" {
		Menu.Language = m.Language
	}
	if m.Font != "" {
		Menu.FontPath = m.Font
	}
	if len(m.Items) > 0 {
		Menu.Items = m.Items
	}

	Debug.StartOpen = Debug.StartOpen || fc.Debug.StartOpen
	Debug.Overlay = Debug.Overlay || fc.Debug.Overlay
	if fc.Debug.LogLevel != "" {
		Debug.LogLevel = fc.Debug.LogLevel
	}
	return nil
}

// WriteDefault creates path with DefaultTOML unless it already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultTOML), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
