// Package i18n localizes menu labels and status lines and derives the text
// direction of the active language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/automoto/foldmenu/shared/choreo"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Catalog holds the bundle and a localizer for the active language.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and activates lang.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := messageFS.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	c := &Catalog{bundle: bundle}
	if err := c.SetLanguage(lang); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLanguage switches the active language. English is always the fallback.
func (c *Catalog) SetLanguage(code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("language %q: %w", code, err)
	}
	c.tag = tag
	c.localizer = i18n.NewLocalizer(c.bundle, tag.String(), language.English.String())
	return nil
}

func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Languages lists the tags that have a message file.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Get returns the message for id, or id itself when no file defines it.
func (c *Catalog) Get(id string) string {
	return c.GetWithData(id, nil)
}

func (c *Catalog) GetWithData(id string, data map[string]interface{}) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

// Direction reports the text direction of the active language.
func (c *Catalog) Direction() choreo.TextDirection {
	return Direction(c.tag)
}

// Direction maps a language tag to its writing direction using the tag's
// most likely script.
func Direction(tag language.Tag) choreo.TextDirection {
	script, _ := tag.Script()
	switch script.String() {
	case "Arab", "Hebr", "Thaa", "Syrc", "Nkoo", "Adlm":
		return choreo.RTL
	}
	return choreo.LTR
}
