package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/foldmenu/config"
	"github.com/quasilyte/gdata"
)

// SavedPrefs represents the menu preferences stored on disk
type SavedPrefs struct {
	DurationMillis int    `json:"durationMillis"`
	Gravity        string `json:"gravity"`
	Language       string `json:"language"`
}

// prefStore is the subset of gdata.Manager the menu needs.
type prefStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const prefsKey = "prefs"

var store prefStore

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "foldmenu",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadPrefs loads preferences from disk. No store or no saved data yields nil.
func LoadPrefs() (*SavedPrefs, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(prefsKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePrefs writes the current menu configuration to disk
func SavePrefs() error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(SavedPrefs{
		DurationMillis: cfg.Menu.DurationMillis,
		Gravity:        cfg.Menu.Gravity,
		Language:       cfg.Menu.Language,
	})
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := store.SaveItem(prefsKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// ApplySavedPrefs overlays saved preferences on the menu configuration.
// Used during startup before the scene is created.
func ApplySavedPrefs(saved *SavedPrefs) {
	if saved == nil {
		return
	}
	if saved.DurationMillis >= 0 {
		cfg.Menu.DurationMillis = saved.DurationMillis
	}
	if saved.Gravity != "" {
		cfg.Menu.Gravity = saved.Gravity
	}
	if saved.Language != "" {
		cfg.Menu.Language = saved.Language
	}
}
