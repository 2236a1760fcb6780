package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/automoto/foldmenu/config"
	"github.com/automoto/foldmenu/fonts"
	"github.com/automoto/foldmenu/i18n"
	"github.com/automoto/foldmenu/scenes"
	"github.com/automoto/foldmenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(catalog *i18n.Catalog, logger *slog.Logger) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewMenuScene(catalog, logger),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func main() {
	configPath := flag.String("config", "foldmenu.toml", "path to a TOML config file")
	lang := flag.String("lang", "", "label language, overrides config and saved preferences")
	writeConfig := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.WriteDefault(*configPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadPrefs(); err == nil && saved != nil {
		systems.ApplySavedPrefs(saved)
	}
	if *lang != "" {
		config.Menu.Language = *lang
	}

	logger := newLogger(config.Debug.LogLevel)
	slog.SetDefault(logger)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if config.Menu.FontPath != "" {
		if err := fonts.LoadFile(fonts.Label, config.Menu.FontPath, 18); err != nil {
			log.Printf("Warning: Could not load label font: %v", err)
		}
	}

	catalog, err := i18n.New(config.Menu.Language)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("foldmenu")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(catalog, logger)); err != nil {
		log.Fatal(err)
	}
}
