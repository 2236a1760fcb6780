package config

import "image/color"

// MenuConfig contains the folding menu's geometry, timing and colors
type MenuConfig struct {
	// Geometry
	ItemSize    float64 // Height of a row and width of the icon column
	LabelWidth  float64 // Width of the label strip next to the icons
	LabelOffset float64 // Distance a hidden label is tucked toward the icons
	MarginX     float64
	MarginY     float64

	// Timing
	DurationMillis int    // Per-item animation length
	Curve          string // "hesitate", "linear", "outcubic", "inoutquad"

	// Layout
	Gravity  string // "start" or "end"
	Language string // BCP 47 tag; decides text direction and label language

	// Optional TTF for labels; the built-in face covers Latin scripts only
	FontPath string

	// Items, in display order. IDs double as i18n message IDs.
	Items []string

	// Visual
	BackgroundColor color.RGBA
	IconColor       color.RGBA
	AnchorColor     color.RGBA
	DividerColor    color.RGBA
	LabelColor      color.RGBA
	StatusColor     color.RGBA
}

// HitConfig contains click hit-testing configuration
type HitConfig struct {
	CellSize int // Broadphase cell size for the resolv space
}

// Config holds the window dimensions
type Config struct {
	Width  int
	Height int
	TPS    int // Ticks per second of the frame loop
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartOpen bool // Open the menu on the first frame
	Overlay   bool // Draw hit areas and timeline state
	LogLevel  string
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Hit HitConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	Divider      = color.RGBA{R: 40, G: 60, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
	}

	Menu = MenuConfig{
		ItemSize:    56,
		LabelWidth:  180,
		LabelOffset: 24,
		MarginX:     16,
		MarginY:     16,

		DurationMillis: 100,
		Curve:          "hesitate",

		Gravity:  "end",
		Language: "en",

		Items: []string{"close", "send_message", "like", "add_friend", "add_favorite", "block_user"},

		BackgroundColor: Slate,
		IconColor:       DarkBlue,
		AnchorColor:     Orange,
		DividerColor:    Divider,
		LabelColor:      White,
		StatusColor:     LightBlue,
	}

	Hit = HitConfig{
		CellSize: 8,
	}

	Debug = DebugConfig{
		StartOpen: false,
		Overlay:   false,
		LogLevel:  "info",
	}
}
